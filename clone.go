package actions

// Cloner allows payload and meta types to provide deep copy logic.
// Action.Clone uses it when present.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For simple value types with no pointers,
// slices, or maps, Clone can simply return the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}
