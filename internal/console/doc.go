// Package console is the synchronization and feedback loop of the user desk.
//
// Operator intents are modeled as command handlers: pure functions from an
// Input to a Plan describing the endpoint call to make and the UI effects to
// apply on success or failure. A single Router executes plans against a
// Surface (the web page or the terminal), the notification center and the
// Synchronizer, which is the only writer of the rendered collection.
//
// The rendered collection changes only through Synchronizer.Reload, and only
// by wholesale replacement.
package console
