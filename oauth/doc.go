// Package oauth mints eSignature access tokens with the JWT bearer grant.
//
// BuildAssertion signs {iss, sub, aud, iat, exp, scope} with the
// integration's RSA key; ExchangeAssertion posts it to the authorization
// server's /oauth/token endpoint. Tokens are not cached or renewed.
package oauth
