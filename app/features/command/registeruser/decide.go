package registeruser

import (
	"strings"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	EmailTaken bool
}

// Decide implements the business rules for registering a user.
//
//	GIVEN: A name and an email address
//	WHEN: RegisterUser command is received
//	THEN: the user is added to the directory
//	ERROR: ErrInvalidUser if the name is empty or the email has no '@'
//	ERROR: ErrUserExists if the email is registered already
func Decide(s State, command Command) core.DecisionResult[circulation.User] {
	if command.Name == "" || !strings.Contains(command.Email, "@") {
		return core.ErrorDecision[circulation.User](circulation.ErrInvalidUser)
	}

	if s.EmailTaken {
		return core.ErrorDecision[circulation.User](circulation.ErrUserExists)
	}

	return core.SuccessDecision(circulation.User{
		UserID: command.UserID,
		Email:  command.Email,
		Name:   command.Name,
		Phone:  command.Phone,
	})
}
