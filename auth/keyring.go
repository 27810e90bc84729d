// Package auth provides a high-level API for persisting and retrieving imgur API credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service    = "imagespider"
	clientUser = "imgur-client-id"
	secretUser = "imgur-client-secret"
)

// SetImgurCredentials persists the imgur client id and secret to the system keyring.
func SetImgurCredentials(clientID, clientSecret string) error {
	if err := keyring.Set(service, clientUser, clientID); err != nil {
		return err
	}
	return keyring.Set(service, secretUser, clientSecret)
}

// GetImgurCredentials retrieves the imgur client id and secret from the system keyring.
func GetImgurCredentials() (clientID, clientSecret string, err error) {
	clientID, err = keyring.Get(service, clientUser)
	if err != nil {
		return "", "", err
	}
	clientSecret, err = keyring.Get(service, secretUser)
	if err != nil {
		return "", "", err
	}
	return clientID, clientSecret, nil
}

// DeleteImgurCredentials removes the imgur credentials from the system keyring.
func DeleteImgurCredentials() error {
	if err := keyring.Delete(service, clientUser); err != nil {
		return err
	}
	return keyring.Delete(service, secretUser)
}
