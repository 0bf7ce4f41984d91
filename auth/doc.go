// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and credential checks.

# Bearer Tokens

Player tokens are random 24-byte (192-bit) secrets, hex encoded:

	token, err := auth.GenerateToken()

A token is issued once at registration and never rotates; re-registering
with the same name returns the original token.

BearerToken extracts the token from an Authorization header:

	token, err := auth.BearerToken(r)

# Admin Key

CheckAdminKey compares the X-Admin-Key header value against the
configured secret in constant time:

	if err := auth.CheckAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}
*/
package auth
