package domain

import "encoding/json"

// knownUserKeys are the identity attributes mapped onto User struct fields.
// Everything else the auth service returns lands in Profile.
var knownUserKeys = map[string]struct{}{
	"id":    {},
	"name":  {},
	"email": {},
}

// User models the authenticated account as returned by the auth service.
// The service owns the shape of the profile section, so unknown attributes
// are carried verbatim in Profile and survive a persist/hydrate round trip.
type User struct {
	ID      string
	Name    string
	Email   string
	Profile map[string]any
}

// MarshalJSON flattens Profile back into the top-level object so the stored
// blob is byte-compatible with what the auth service sent.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Profile)+3)
	for k, v := range u.Profile {
		out[k] = v
	}
	out["id"] = u.ID
	out["name"] = u.Name
	out["email"] = u.Email
	return json.Marshal(out)
}

// UnmarshalJSON accepts the auth service's flat user object, splitting known
// identity fields from free-form profile attributes.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	u.ID, _ = raw["id"].(string)
	u.Name, _ = raw["name"].(string)
	u.Email, _ = raw["email"].(string)

	u.Profile = nil
	for k, v := range raw {
		if _, known := knownUserKeys[k]; known {
			continue
		}
		if u.Profile == nil {
			u.Profile = make(map[string]any)
		}
		u.Profile[k] = v
	}
	return nil
}

// Session is the authenticated-user context carried across restarts.
type Session struct {
	Token   string
	User    *User
	Loading bool
}

// IsAuthenticated reports whether a session token is present. Token validity
// is the auth service's concern; presence is the only local signal.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
