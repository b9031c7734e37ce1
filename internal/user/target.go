package user

// Target identifies the user a deletion run applies to. Exactly one
// public contract: delete by directory uid, with email accepted as an
// alternate entry point that resolves to a uid first.
type Target struct {
	UID   string
	Email string
}

func ByID(uid string) Target {
	return Target{UID: uid}
}

func ByEmail(email string) Target {
	return Target{Email: email}
}
