package registeruser

import (
	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "RegisterUser"
)

// Command adds a directory entry.
type Command struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Phone  string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, email, name, phone string) Command {
	return Command{
		UserID: userID,
		Email:  core.NormalizeEmail(email),
		Name:   core.NormalizeText(name),
		Phone:  core.NormalizeText(phone),
	}
}
