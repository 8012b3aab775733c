// Package refs maps OBJECT references to integer handles so they can cross a
// boundary that only carries numbers, such as a wazero value stack.
//
// A Table hands out handles starting at 1:
//
//	table := refs.NewTable()
//	h := table.Insert(conn)
//	v, ok := table.Get(h)
//	v, ok = table.Remove(h)
//
// Handle 0 is reserved for the nil reference. Inserting nil returns 0 and
// Get(0) reports (nil, false). Freed handles are reused most recent first.
//
// The table never frees a handle on its own. Whoever inserts a value, or
// receives a handle produced by an insert, owns it and must Remove it.
//
// Values that implement Dropper are dropped when removed and when the table
// is closed. A closed table rejects inserts.
package refs
