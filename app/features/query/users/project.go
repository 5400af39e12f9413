package users

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project maps the directory, which the reader returns ordered by name.
func Project(users []circulation.User, _ Query) Users {
	infos := make([]UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, UserInfo(user))
	}

	return Users{Users: infos, Count: len(infos)}
}
