package services

// Err is a typed sentinel error for business-rule violations. Controllers match
// these with errors.Is and translate them to API responses; anything else is an
// unexpected storage failure.
type Err string

func (e Err) Error() string {
	return string(e)
}

const (
	// Validation errors: a required field is missing, malformed or too long.
	// Never retried; surfaced to the caller for re-prompting.
	ErrTextRequired     Err = "services: post text is required"
	ErrAuthorRequired   Err = "services: author is required"
	ErrCommentRequired  Err = "services: comment text is required"
	ErrCommentTooLong   Err = "services: comment text must not exceed 200 characters"
	ErrTitleRequired    Err = "services: group title is required"
	ErrSlugRequired     Err = "services: group slug is required"
	ErrSlugInvalid      Err = "services: group slug may only contain lowercase letters, digits and hyphens"
	ErrNameRequired     Err = "services: contact name is required"
	ErrNameTooLong      Err = "services: contact name must not exceed 100 characters"
	ErrSubjectRequired  Err = "services: contact subject is required"
	ErrSubjectTooLong   Err = "services: contact subject must not exceed 100 characters"
	ErrBodyRequired     Err = "services: contact body is required"
	ErrEmailInvalid     Err = "services: email address is not valid"
	ErrUsernameRequired Err = "services: username is required"
	ErrPasswordTooShort Err = "services: password must be at least 6 characters"

	// Uniqueness violations. Callers treat these as "already exists",
	// not as transient failures.
	ErrSlugTaken        Err = "services: group slug is already taken"
	ErrUsernameTaken    Err = "services: username is already taken"
	ErrAlreadyFollowing Err = "services: follow edge already exists"

	// Follow guard errors.
	ErrSelfFollow   Err = "services: users cannot follow themselves"
	ErrNotFollowing Err = "services: follow edge does not exist"

	// Reference integrity: a referenced entity does not exist.
	ErrUserNotFound    Err = "services: user not found"
	ErrPostNotFound    Err = "services: post not found"
	ErrGroupNotFound   Err = "services: group not found"
	ErrCommentNotFound Err = "services: comment not found"
	ErrContactNotFound Err = "services: contact not found"

	ErrInvalidCredentials Err = "services: invalid username or password"
)
