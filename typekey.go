package blackboard

import "reflect"

// typeKey returns the identity used to index T's store in the board map.
//
// reflect.Type values are canonical per type within a process: two calls for
// the same T always return the same value and distinct types can never
// compare equal, so there is no collision case to defend against. The
// pointer-Elem form resolves an interface T to the interface type itself,
// where reflect.TypeOf on a zero value would yield nil.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
