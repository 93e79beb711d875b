// Package project manages a kin-backup project directory: the owner's
// working tree of public and private files plus the settings that name
// the recipients a package will eventually be compiled for.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/pcrockett/kin-backup/internal/masterkey"
)

const configFileName = "config.json"

// Recipient is one person a compiled package will be readable by, along
// with the passphrase they will need to recover it.
type Recipient struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

// Settings is the persisted configuration of a project: who owns it, the
// master key that protects its private archive, and who it will be
// compiled for.
type Settings struct {
	Owner        string      `json:"owner"`
	MasterKeyB64 string      `json:"master_key"`
	Recipients   []Recipient `json:"recipients"`
}

// NewSettings creates settings for a fresh project with a brand new
// master key.
func NewSettings(owner string, recipients []Recipient) *Settings {
	k := masterkey.New()
	defer k.Close()

	return &Settings{
		Owner:        owner,
		MasterKeyB64: k.EncodeBase64(),
		Recipients:   recipients,
	}
}

// Write serializes the settings as indented JSON to path, overwriting any
// existing file.
func (s *Settings) Write(path string) error {
	encoded, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return kinerrors.NewPathError("marshal", path, err)
	}

	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return kinerrors.NewPathError("write", path, err)
	}
	return nil
}

// ReadSettings loads settings previously written with Write.
func ReadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kinerrors.NewPathError("read", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", kinerrors.ErrConfigCorrupt, err)
	}
	return &s, nil
}

// GetRecipient returns the single recipient matching name, failing if
// zero or more than one recipient shares that name.
func (s *Settings) GetRecipient(name string) (*Recipient, error) {
	var match *Recipient
	count := 0
	for i := range s.Recipients {
		if s.Recipients[i].Name == name {
			match = &s.Recipients[i]
			count++
		}
	}

	switch count {
	case 0:
		return nil, fmt.Errorf("%w: %q", kinerrors.ErrRecipientNotFound, name)
	case 1:
		return match, nil
	default:
		return nil, fmt.Errorf("%w: %d recipients found with the name %q", kinerrors.ErrRecipientAmbiguous, count, name)
	}
}

// GetPeers returns every recipient other than the one named, after
// confirming name is itself a valid recipient.
func (s *Settings) GetPeers(name string) ([]Recipient, error) {
	if _, err := s.GetRecipient(name); err != nil {
		return nil, err
	}

	peers := make([]Recipient, 0, len(s.Recipients))
	for _, r := range s.Recipients {
		if r.Name != name {
			peers = append(peers, r)
		}
	}
	return peers, nil
}

// MasterKey decodes and returns the project's master key.
func (s *Settings) MasterKey() (*masterkey.MasterKey, error) {
	return masterkey.DecodeBase64(s.MasterKeyB64)
}
