package server

import (
	"errors"
)

// ErrVerificationFailed rejects a subscription handshake.
var ErrVerificationFailed = errors.New("verification failed")

// verifySubscription decides the Meta subscription handshake. It returns the
// challenge to echo back, or ErrVerificationFailed. An empty configured token
// fails closed: the platform never sends an empty verify token.
func verifySubscription(mode, token, challenge, verifyToken string) (string, error) {
	if mode == "subscribe" && token == verifyToken && challenge != "" {
		return challenge, nil
	}
	return "", ErrVerificationFailed
}
