// Package tasksdk is the Go client for the PriorityPro task service.
//
// An SDKClient performs the unauthenticated calls (register, login). A
// successful login returns a Session, which holds the bearer token and a
// local mirror of the account's tasks. The mirror is only ever updated from
// server response payloads; the server stays the single source of truth for
// server-assigned fields like ids and timestamps.
//
// The shared request/response types and the APIError type in this package
// are also used by the server handlers, keeping both sides of the wire
// contract in one place.
package tasksdk
