// Package gate implements the session and authorization layer for the
// Shelfside book-reading and forum platform: token persistence, an auth
// client over a pluggable identity provider, a bearer-attaching API client,
// and route guards that evaluate per-action forum bans.
//
// Session storage:
//   - SessionStore persists an opaque bearer token and a role string under
//     fixed keys. A missing token always means unauthenticated, regardless
//     of whatever role value is still stored.
//
// Ban evaluation:
//   - Each bannable forum action carries its own BanRecord (flag, nullable
//     expiry, reason). IsBannedAt and BanMessage are the single definition
//     shared by the route guards and the admin ban summary; the admin view
//     additionally aggregates via LatestBanExpiry.
//
// Route guards:
//   - PrivateRoute gates on token presence and an optional role allow-list
//     without touching the network. The forum guards fetch the acting
//     user's profile and degrade permissively when the fetch fails, so a
//     broken profile endpoint never locks users out of navigation.
package gate
