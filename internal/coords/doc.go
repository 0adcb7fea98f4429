// Package coords converts between timeline seconds and horizontal pixels,
// memoizing results so scroll and zoom handlers pay for each conversion once.
//
// Cache keys are structural: a Key names the subject (usually a clip id) and
// the dimension being measured, and the memo index additionally embeds the
// pixels-per-second and zoom inputs. A changed zoom therefore can never read
// a stale entry; it simply misses. Entries for a subject whose underlying
// time changed are dropped with InvalidateSubject.
package coords
