package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// chooseAuth picks an authentication mechanism from the server's AUTH
// extension parameters. PLAIN is preferred, then LOGIN, then CRAM-MD5.
func chooseAuth(mechanisms, username, password, host string) smtp.Auth {
	offered := make(map[string]bool)
	for _, m := range strings.Fields(mechanisms) {
		offered[strings.ToUpper(m)] = true
	}

	switch {
	case offered["PLAIN"]:
		return smtp.PlainAuth("", username, password, host)
	case offered["LOGIN"]:
		return &loginAuth{username: username, password: password, host: host}
	case offered["CRAM-MD5"]:
		return smtp.CRAMMD5Auth(username, password)
	default:
		return smtp.PlainAuth("", username, password, host)
	}
}

// loginAuth implements the LOGIN mechanism, which net/smtp does not provide.
type loginAuth struct {
	username string
	password string
	host     string
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	// Same guard as smtp.PlainAuth: never send credentials in the clear to a remote host.
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errors.New("unencrypted connection")
	}
	if server.Name != a.host {
		return "", nil, errors.New("wrong host name")
	}
	return "LOGIN", nil, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(string(fromServer))) {
	case "username:":
		return []byte(a.username), nil
	case "password:":
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected LOGIN challenge: %q", fromServer)
	}
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}
