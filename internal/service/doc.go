// Package service implements the application's business logic.
// The task service is the sole authority for task business rules:
// every read and write against the store passes through it, and every
// operation emits structured log events carrying stable numeric event
// codes so they can be filtered and alerted on independent of message
// text.
package service
