package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/basicauth"
)

// AdminBasicAuth gates the administrative surface behind HTTP Basic
// credentials. A missing or mismatched Authorization header yields 401 with
// a WWW-Authenticate challenge.
func AdminBasicAuth(username, password string) iris.Handler {
	return basicauth.New(basicauth.Options{
		Realm: "Admin",
		Allow: basicauth.AllowUsers(map[string]string{username: password}),
	})
}
