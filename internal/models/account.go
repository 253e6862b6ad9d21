// Package models defines the fixed-shape records produced by the account
// generator and consumed by the persistence layer. An Account is built fully
// in memory, written once, dumped once, and discarded.
package models

// WorkspaceStatus is the lifecycle state persisted with the main row.
type WorkspaceStatus string

const (
	StatusActive   WorkspaceStatus = "active"
	StatusDisabled WorkspaceStatus = "disabled"
)

// KeyType names the cryptographic construction a key belongs to.
type KeyType string

const (
	// KeyTypeCurve25519 marks a DH-capable public/private keypair (NaCl box).
	KeyTypeCurve25519 KeyType = "curve25519"
	// KeyTypeSecretBox marks a 256-bit symmetric key (XSalsa20-Poly1305).
	KeyTypeSecretBox KeyType = "secretbox"
)

// KeyPurpose is the closed set of roles an account key can hold.
type KeyPurpose string

const (
	PurposeIdentity       KeyPurpose = "identity"
	PurposeContactRequest KeyPurpose = "contact_request"
	PurposeFirstDevice    KeyPurpose = "firstdevice"
	PurposeBroadcast      KeyPurpose = "broadcast"
	PurposeSystem         KeyPurpose = "system"
	PurposeFolder         KeyPurpose = "folder"
)

// KeyPurposes lists the six purposes of an account's key set in storage
// order. The first three are keypairs, the last three symmetric keys.
var KeyPurposes = []KeyPurpose{
	PurposeIdentity,
	PurposeContactRequest,
	PurposeFirstDevice,
	PurposeBroadcast,
	PurposeSystem,
	PurposeFolder,
}

// KeyRecord carries one key in raw and base-85 form. For Curve25519 records
// the Public/Private pairs are set; for secret-box records only Key/KeyB85.
type KeyRecord struct {
	Type    KeyType
	Purpose KeyPurpose
	ID      string

	Public     []byte
	Private    []byte
	PublicB85  string
	PrivateB85 string

	Key    []byte
	KeyB85 string
}

// Device is one registered client device: its own ID plus an identity
// keypair of its own.
type Device struct {
	ID  string
	Key KeyRecord
}

// FolderRecord is the storable form of one encrypted folder name: the
// folder's UUID, the base-85 sealed name, and the ID of the folder key that
// sealed it so a reader knows which key decrypts it.
type FolderRecord struct {
	FolderID string
	EncName  string
	KeyID    string
}

// FolderLabels is the closed set of default folder names every workspace
// starts with, in storage order. It is never extended at runtime.
var FolderLabels = []string{
	"Messages",
	"Contacts",
	"Calendar",
	"Tasks",
	"Files",
	"Files Attachments",
	"Social",
}

// Account is one fully provisioned synthetic workspace identity.
//
// Password holds the generated plaintext passphrase. It exists only so the
// operator report can print it; it is never persisted.
type Account struct {
	WorkspaceID     string
	FriendlyAddress string
	Status          WorkspaceStatus

	Password        string
	PasswordSalt    []byte
	PasswordSaltB85 string
	PasswordHash    []byte
	PasswordHashB85 string

	Keys      []KeyRecord
	FolderMap map[string]string
	Folders   []FolderRecord
	Devices   []Device
}

// Key returns the account key with the given purpose, or nil if absent.
func (a *Account) Key(purpose KeyPurpose) *KeyRecord {
	for i := range a.Keys {
		if a.Keys[i].Purpose == purpose {
			return &a.Keys[i]
		}
	}
	return nil
}
