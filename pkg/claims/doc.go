// Package claims carries authentication state between requests as a signed
// HS256 token and turns it back into the inputs the session resolver needs.
//
// The universe fields encode the resolver's precedence: a token minted by an
// explicit "switch universe" action carries both universe id and role (an
// override), while a token minted at login carries only the persisted
// universe id (a stored selection). Claims.ResolveOptions maps either form
// onto the matching resolver option.
//
//	svc, _ := claims.NewService(cfg.SigningKey, claims.WithTTL(24*time.Hour))
//
//	token, _ := svc.Issue(claims.Claims{
//		Subject:    userID.String(),
//		GlobalRole: "default",
//		UniverseID: universeID.String(),
//	})
//
//	c, err := svc.Parse(token)
//	s := resolver.Resolve(ctx, c.Identity(), c.ResolveOptions()...)
//
// The implementation is deliberately stdlib-only (crypto/hmac, sha256): the
// application both issues and verifies, so symmetric signing suffices and
// keeps the dependency surface flat.
package claims
