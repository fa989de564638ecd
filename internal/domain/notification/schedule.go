package notification

import (
	"fmt"
	"time"
)

// Campaign offsets, measured from the moment an order is created without
// payment follow-through.
const (
	RecoveryDelay  = time.Hour
	Winback15Delay = 15 * 24 * time.Hour
	Winback30Delay = 30 * 24 * time.Hour
	Winback45Delay = 45 * 24 * time.Hour
)

type ScheduledStep struct {
	Type   Type
	SendAt time.Time
}

// WinbackSchedule returns the four-step campaign for a single abandoned
// checkout. All steps are enqueued together; later purchase completion
// cancels whatever is still pending.
func WinbackSchedule(now time.Time) []ScheduledStep {
	return []ScheduledStep{
		{Type: TypeRecovery, SendAt: now.Add(RecoveryDelay)},
		{Type: TypeWinback15, SendAt: now.Add(Winback15Delay)},
		{Type: TypeWinback30, SendAt: now.Add(Winback30Delay)},
		{Type: TypeWinback45, SendAt: now.Add(Winback45Delay)},
	}
}

// Campaign copy. Kept deliberately plain; the storefront operator rewrites
// these per locale.

func RecoveryContent(customerName string) string {
	return fmt.Sprintf("Hi %s! You left items in your cart. Your order is saved and ready whenever you are.", customerName)
}

func WinbackContent(customerName string, daysAgo int) string {
	return fmt.Sprintf("Hi %s! It's been %d days since your last visit. Come see what's new in the store.", customerName, daysAgo)
}

func RestockContent(productName string, variantName *string) string {
	if variantName != nil && *variantName != "" {
		return fmt.Sprintf("Good news! %s (%s) is back in stock. Grab yours before it runs out again.", productName, *variantName)
	}
	return fmt.Sprintf("Good news! %s is back in stock. Grab yours before it runs out again.", productName)
}
