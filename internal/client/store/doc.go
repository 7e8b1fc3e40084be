// Package store holds the console's two state slices and the actions that
// change them.
//
// # Overview
//
// SessionStore owns the sign-in flow and the session token. UsersStore owns
// the current page of users and one FlowState per operation family (fetch,
// create, update, delete). Each action runs three phases:
//
//  1. pending: the family's FlowState is marked loading and its error cleared;
//  2. the API function runs outside the store lock;
//  3. fulfilled or rejected: the reducer applies the result under the lock.
//
// Every transition publishes an immutable snapshot to subscribers, after the
// lock is released.
//
// # Ordering
//
// Each request is tagged with a per-family generation. A fetch or sign-in
// that settles after a newer one was issued is dropped. Mutations always
// apply their effect on the list, but only the newest request of a family
// may write that family's FlowState.
//
// Search is client-side only: see Search and Filter.
package store
