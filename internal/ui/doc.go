// Package ui contains the Bubble Tea program that powers the git popup.
// The Model focuses on message orchestration: every incoming tea.Msg is
// routed through a typed handler registry, and key presses are forwarded to
// whichever list controller is active.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key messages go to the active controller, which owns the interaction
//     mode (normal, text input, delete confirmation) for its view.
//   - Completion messages (fetch, mutation, batch results) carry the name of
//     the view they belong to; Model.Update offers them to each controller
//     and the owner folds them into its state.
//   - A backend.Watcher streams repository change hints; Update waits on
//     those and triggers a re-fetch of the affected view.
//
// State ownership:
//   - All list state (items, cursor, filter, staged keys, in-flight flag)
//     lives in internal/list.State, mutated only on the update goroutine.
//   - Branch and stash behavior plug in through the capability interfaces in
//     internal/list; the ui package never special-cases either view.
package ui
