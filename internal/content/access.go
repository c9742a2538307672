package content

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// View is an item as served to readers, annotated with the outcome of the
// password gate.
type View struct {
	Item
	Protected        bool `json:"_protected,omitempty"`
	PasswordRequired bool `json:"_passwordRequired,omitempty"`
	Authenticated    bool `json:"_authenticated,omitempty"`
}

// Digest returns the lowercase hex SHA-256 of password, the form stored in
// the passwordHash front-matter key.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Access applies the password gate to item.
//
// Unprotected items are returned with their body. For protected items a nil
// or empty password yields a view without body, a matching password yields
// the full view and any other password returns ErrInvalidPassword. Children
// are always returned as an outline: each descendant has its own gate.
func Access(item *Item, password *string) (*View, error) {
	if item == nil {
		return nil, ErrItemRequired
	}

	view := &View{Item: *item.clone()}
	view.Children = Outline(item.Children)
	if !item.IsProtected() {
		return view, nil
	}

	view.Protected = true
	if password == nil || *password == "" {
		view.Body = ""
		view.BodyHTML = ""
		view.Children = nil
		view.PasswordRequired = true
		return view, nil
	}

	if !Verify(item.PasswordHash, *password) {
		return nil, ErrInvalidPassword
	}
	view.Authenticated = true
	return view, nil
}

// Verify reports whether password hashes to storedDigest. The stored digest is
// compared case-insensitively in constant time.
func Verify(storedDigest, password string) bool {
	expected := strings.ToLower(strings.TrimSpace(storedDigest))
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(Digest(password))) == 1
}

// Outline copies items for listings. Bodies are removed at every depth so a
// listing never carries protected text; the password gate only applies to
// single-item reads.
func Outline(items []*Item) []*Item {
	out := cloneItems(items)
	for _, item := range out {
		stripBodies(item)
	}
	return out
}

func stripBodies(item *Item) {
	if item == nil {
		return
	}
	item.Body = ""
	item.BodyHTML = ""
	for _, child := range item.Children {
		stripBodies(child)
	}
}
