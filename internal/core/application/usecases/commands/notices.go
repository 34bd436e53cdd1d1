package commands

import (
	"fmt"

	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/core/ports"
)

// Notice templates, one per lifecycle transition. Recipient is always the
// package's sender pair; callers check HasSenderInfo before enqueueing.

func dispatchedNotice(pkg *tracking.Package) ports.Message {
	return ports.Message{
		Subject: fmt.Sprintf("Hi %s, Your Package was dispatched!", pkg.SenderName()),
		Body: fmt.Sprintf("Your package '%s' with code %s was dispatched",
			pkg.Title(), pkg.Code()),
		RecipientName:  pkg.SenderName(),
		RecipientEmail: pkg.SenderEmail(),
	}
}

func updatedNotice(pkg *tracking.Package) ports.Message {
	return ports.Message{
		Subject: "Your Package was updated",
		Body: fmt.Sprintf(
			"Your package '%s' with code %s was updated, his actual data is:\n"+
				"Title: %s\nWeight: %s\nSenderEmail: %s\nSenderName: %s",
			pkg.Title(), pkg.Code(), pkg.Title(), pkg.Weight(), pkg.SenderEmail(), pkg.SenderName()),
		RecipientName:  pkg.SenderName(),
		RecipientEmail: pkg.SenderEmail(),
	}
}

func deliveredNotice(pkg *tracking.Package) ports.Message {
	return ports.Message{
		Subject: "Your Package was delivered",
		Body: fmt.Sprintf("Your package '%s' with code %s was delivered!!",
			pkg.Title(), pkg.Code()),
		RecipientName:  pkg.SenderName(),
		RecipientEmail: pkg.SenderEmail(),
	}
}

func newUpdateNotice(pkg *tracking.Package, update *tracking.PackageUpdate) ports.Message {
	return ports.Message{
		Subject: "Your Package has a new Update",
		Body: fmt.Sprintf("Your package '%s' with code %s has a new update: %s",
			pkg.Title(), pkg.Code(), update.Status()),
		RecipientName:  pkg.SenderName(),
		RecipientEmail: pkg.SenderEmail(),
	}
}
