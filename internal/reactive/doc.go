// Package reactive provides observable value cells.
//
// A Writable holds exactly one value and a list of observers. Observers are
// called once on Subscribe with the current value and again, synchronously
// and in subscription order, after every Set or Update.
//
//	title := reactive.NewTitle()
//	stop := title.Subscribe(func(v int) { fmt.Println("title:", v) })
//	defer stop()
//	title.Set(3)
//	title.Update(func(v int) int { return v + 1 })
package reactive
