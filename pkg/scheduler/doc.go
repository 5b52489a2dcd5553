// Package scheduler runs the background expiry watcher: once a day it
// checks every known chat for soon-to-expire pantry items and proactively
// sends leftover suggestions that would use them up.
package scheduler
