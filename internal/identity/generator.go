// Package identity derives complete synthetic workspace identities: password
// material, the six purpose-fixed account keys, the default folder set, and
// the registered devices. Generation is pure in-memory work from the OS
// CSPRNG; the only external effect is CPU burned by the password KDF.
package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/darkwyrm/b85"
	"github.com/everlastingbeta/diceware"
	"github.com/everlastingbeta/diceware/wordlist"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/anselusd/internal/cryptox"
	"github.com/dmitrijs2005/anselusd/internal/keyid"
	"github.com/dmitrijs2005/anselusd/internal/models"
)

const (
	passphraseWords = 3
	maxDevices      = 5
)

// Generator assembles Accounts. It owns the password hasher so that KDF
// parameters are validated once, before the first account is built.
type Generator struct {
	hasher *cryptox.PasswordHasher
	words  diceware.Wordlist
}

// NewGenerator returns a Generator hashing passwords with the given
// parameters. Bad parameters surface here, not per account.
func NewGenerator(params cryptox.Argon2Params) (*Generator, error) {
	hasher, err := cryptox.NewPasswordHasher(params)
	if err != nil {
		return nil, err
	}
	return &Generator{hasher: hasher, words: wordlist.EFFLong}, nil
}

// NewAccount builds one fully populated Account: identity material, password
// hash, encrypted folder records, and one to five devices. Either a complete
// Account
// is returned or the first failure aborts the whole build; no partial
// account escapes.
func (g *Generator) NewAccount() (*models.Account, error) {
	account := &models.Account{
		WorkspaceID: uuid.NewString(),
		Status:      models.StatusActive,
	}

	// Half the accounts get a human-readable alias.
	if randInt(2) == 0 {
		account.FriendlyAddress = fmt.Sprintf("%s %s/example.com",
			firstNames[randInt(len(firstNames))], lastNames[randInt(len(lastNames))])
	}

	// A quarter are disabled so downstream status handling gets exercised.
	if randInt(4) == 3 {
		account.Status = models.StatusDisabled
	}

	password, err := g.rollPassphrase()
	if err != nil {
		return nil, fmt.Errorf("passphrase generation: %w", err)
	}
	account.Password = password

	salt, hash := g.hasher.Hash(password)
	account.PasswordSalt = salt
	account.PasswordSaltB85 = b85.Encode(salt)
	account.PasswordHash = hash
	account.PasswordHashB85 = b85.Encode(hash)

	for _, purpose := range models.KeyPurposes {
		switch purpose {
		case models.PurposeIdentity, models.PurposeContactRequest, models.PurposeFirstDevice:
			account.Keys = append(account.Keys, newKeypairRecord(purpose))
		default:
			account.Keys = append(account.Keys, newSymmetricRecord(purpose))
		}
	}

	account.FolderMap = make(map[string]string, len(models.FolderLabels))
	for _, label := range models.FolderLabels {
		account.FolderMap[label] = uuid.NewString()
	}

	deviceCount := 1 + randInt(maxDevices)
	for i := 0; i < deviceCount; i++ {
		account.Devices = append(account.Devices, models.Device{
			ID:  uuid.NewString(),
			Key: newKeypairRecord(models.PurposeIdentity),
		})
	}

	folders, err := encryptFolderNames(account)
	if err != nil {
		return nil, err
	}
	account.Folders = folders

	return account, nil
}

// encryptFolderNames seals every default folder label under the account's
// folder key. Each record carries the folder key's ID so a reader knows
// which key decrypts it without guessing.
func encryptFolderNames(account *models.Account) ([]models.FolderRecord, error) {
	folderKey := account.Key(models.PurposeFolder)

	records := make([]models.FolderRecord, 0, len(models.FolderLabels))
	for _, label := range models.FolderLabels {
		sealed, err := cryptox.Seal([]byte(label), folderKey.Key)
		if err != nil {
			return nil, fmt.Errorf("folder name encryption: %w", err)
		}
		records = append(records, models.FolderRecord{
			FolderID: account.FolderMap[label],
			EncName:  b85.Encode(sealed),
			KeyID:    folderKey.ID,
		})
	}
	return records, nil
}

// rollPassphrase produces a "ThreeCapitalizedWords" style password from the
// EFF long word list.
func (g *Generator) rollPassphrase() (string, error) {
	rolled, err := diceware.RollWords(passphraseWords, " ", g.words)
	if err != nil {
		return "", err
	}

	words := strings.Fields(rolled)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, ""), nil
}

func newKeypairRecord(purpose models.KeyPurpose) models.KeyRecord {
	public, private := cryptox.GenerateBoxKeypair()
	return models.KeyRecord{
		Type:       models.KeyTypeCurve25519,
		Purpose:    purpose,
		ID:         keyid.New(keyid.MinLength),
		Public:     public,
		Private:    private,
		PublicB85:  b85.Encode(public),
		PrivateB85: b85.Encode(private),
	}
}

func newSymmetricRecord(purpose models.KeyPurpose) models.KeyRecord {
	key := cryptox.GenerateSymmetricKey()
	return models.KeyRecord{
		Type:    models.KeyTypeSecretBox,
		Purpose: purpose,
		ID:      keyid.New(keyid.MinLength),
		Key:     key,
		KeyB85:  b85.Encode(key),
	}
}

// randInt returns a uniform value in [0,n) from the OS CSPRNG. Random-source
// failure panics, as everywhere else on the generation path.
func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}
