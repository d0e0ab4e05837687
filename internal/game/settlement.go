package game

// Settlement is the projected effect of one outcome on a balance. It is a
// preview only: nothing here persists, and the stored balance moves solely
// through cashout.
type Settlement struct {
	WinAmount      float64
	LossAmount     float64
	ProjectedTotal float64
}

// Settle computes what committing the outcome would yield. A win pays
// betAmount*multiplier on top of the balance; a loss forfeits the stake.
func Settle(result Result, betAmount, multiplier, balance float64) Settlement {
	if result == ResultWin {
		winAmount := betAmount * multiplier
		return Settlement{
			WinAmount:      winAmount,
			ProjectedTotal: balance + winAmount,
		}
	}
	return Settlement{
		LossAmount:     betAmount,
		ProjectedTotal: balance - betAmount,
	}
}
