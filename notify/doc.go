/*
Package notify delivers fire-and-forget poll announcements.

Dispatch runs the notifier on its own goroutine and logs failures
without surfacing them; poll creation never fails because a
notification did. LogNotifier is the default implementation and writes
the composed announcement to the structured log. A real email provider
implements Notifier and slots in at construction time.
*/
package notify
