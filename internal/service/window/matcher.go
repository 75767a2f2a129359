// Package window holds the time-of-day membership tests the dispatch loop
// runs against the wall clock.
package window

// NotifyWindowMinutes is the width of the notify bucket at the top of each
// hour. Dispatch fires only inside this bucket, which throttles a cron job
// invoked every few minutes down to effectively once per hour without any
// persisted state.
const NotifyWindowMinutes = 15

// InRange reports whether nowMinutes falls inside [startMinutes, endMinutes],
// inclusive at both ends. Windows that cross midnight (start > end) never
// match; the upstream generator does not emit them.
func InRange(startMinutes, endMinutes, nowMinutes int) bool {
	return nowMinutes >= startMinutes && nowMinutes <= endMinutes
}

// IsNotifyMoment reports whether minuteOfHour is inside the notify bucket.
// The throttle is idempotent per hour rather than exactly-once: two cron
// invocations inside the same bucket both fire. The optional dedup guard
// closes that gap when configured.
func IsNotifyMoment(minuteOfHour int) bool {
	return minuteOfHour >= 0 && minuteOfHour < NotifyWindowMinutes
}
