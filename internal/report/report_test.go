package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/anselusd/internal/models"
)

func fixtureAccount() *models.Account {
	account := &models.Account{
		WorkspaceID:     "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		FriendlyAddress: "Vera Whitfield/example.com",
		Status:          models.StatusActive,
		Password:        "CorrectHorseBattery",
		PasswordSaltB85: "salt85",
		PasswordHashB85: "hash85",
		FolderMap:       map[string]string{},
	}

	for _, purpose := range models.KeyPurposes {
		k := models.KeyRecord{Purpose: purpose, ID: "id-" + string(purpose)}
		switch purpose {
		case models.PurposeBroadcast, models.PurposeSystem, models.PurposeFolder:
			k.Type = models.KeyTypeSecretBox
			k.KeyB85 = "sym-" + string(purpose)
		default:
			k.Type = models.KeyTypeCurve25519
			k.PublicB85 = "pub-" + string(purpose)
			k.PrivateB85 = "priv-" + string(purpose)
		}
		account.Keys = append(account.Keys, k)
	}

	for _, label := range models.FolderLabels {
		account.FolderMap[label] = "fid-" + label
	}

	account.Devices = []models.Device{
		{ID: "dev-1", Key: models.KeyRecord{PublicB85: "dev1-pub", PrivateB85: "dev1-priv"}},
		{ID: "dev-2", Key: models.KeyRecord{PublicB85: "dev2-pub", PrivateB85: "dev2-priv"}},
	}

	return account
}

func TestDumpAccount_ContainsEverySecret(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpAccount(&buf, fixtureAccount()))

	out := buf.String()
	wantLines := []string{
		"Workspace ID : aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"Friendly Address : Vera Whitfield/example.com",
		"Status : active",
		"Password : CorrectHorseBattery",
		"Password Salt.b85 : salt85",
		"Password Hash.b85 : hash85",
		"Identity Public.b85 : pub-identity",
		"Identity Private.b85 : priv-identity",
		"Contact Public.b85 : pub-contact_request",
		"First Device Private.b85 : priv-firstdevice",
		"Broadcast.b85 : sym-broadcast",
		"System.b85 : sym-system",
		"Folder Map.b85 : sym-folder",
		"Messages Folder : fid-Messages",
		"Files Attachments Folder : fid-Files Attachments",
		"Device #1 ID : dev-1",
		"Device #2 Private.b85 : dev2-priv",
	}
	for _, line := range wantLines {
		assert.Contains(t, out, line+"\n")
	}

	assert.True(t, strings.HasSuffix(out, "\n\n"), "dump must end with a blank separator line")
}

func TestDumpAccount_FolderOrderIsStable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpAccount(&buf, fixtureAccount()))

	out := buf.String()
	prev := -1
	for _, label := range models.FolderLabels {
		idx := strings.Index(out, label+" Folder : ")
		require.NotEqual(t, -1, idx, "missing folder line for %q", label)
		assert.Greater(t, idx, prev, "folder lines out of order at %q", label)
		prev = idx
	}
}
