// Package report prints provisioned accounts for operator inspection. The
// dump intentionally includes every plaintext secret: it exists so a human
// can log into a freshly seeded test server. Nothing here belongs anywhere
// near a production code path.
package report

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/anselusd/internal/models"
)

type entry struct {
	label string
	value string
}

// DumpAccount writes one account as labeled key/value lines followed by a
// blank line.
func DumpAccount(w io.Writer, account *models.Account) error {
	entries := []entry{
		{"Workspace ID", account.WorkspaceID},
		{"Friendly Address", account.FriendlyAddress},
		{"Status", string(account.Status)},
		{"Password", account.Password},
		{"Password Salt.b85", account.PasswordSaltB85},
		{"Password Hash.b85", account.PasswordHashB85},
	}

	for _, k := range account.Keys {
		switch k.Type {
		case models.KeyTypeCurve25519:
			entries = append(entries,
				entry{fmt.Sprintf("%s Public.b85", keyTitle(k.Purpose)), k.PublicB85},
				entry{fmt.Sprintf("%s Private.b85", keyTitle(k.Purpose)), k.PrivateB85},
			)
		case models.KeyTypeSecretBox:
			entries = append(entries, entry{fmt.Sprintf("%s.b85", keyTitle(k.Purpose)), k.KeyB85})
		}
	}

	for _, label := range models.FolderLabels {
		entries = append(entries, entry{fmt.Sprintf("%s Folder", label), account.FolderMap[label]})
	}

	for i, d := range account.Devices {
		entries = append(entries,
			entry{fmt.Sprintf("Device #%d ID", i+1), d.ID},
			entry{fmt.Sprintf("Device #%d Public.b85", i+1), d.Key.PublicB85},
			entry{fmt.Sprintf("Device #%d Private.b85", i+1), d.Key.PrivateB85},
		)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s : %s\n", e.label, e.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func keyTitle(purpose models.KeyPurpose) string {
	switch purpose {
	case models.PurposeIdentity:
		return "Identity"
	case models.PurposeContactRequest:
		return "Contact"
	case models.PurposeFirstDevice:
		return "First Device"
	case models.PurposeBroadcast:
		return "Broadcast"
	case models.PurposeSystem:
		return "System"
	case models.PurposeFolder:
		return "Folder Map"
	}
	return string(purpose)
}
