// Package equal implements the element comparison shared by the tuple types.
package equal

import "reflect"

// Values reports whether a and b are equal.
//
// Nil values are settled first: two nils are equal, a nil and a non-nil
// value are not. An Equal method is never called on a nil receiver.
//
// When the value has an Equal method accepting the other value (time.Time,
// for example) that method decides. The method is looked up on T and, when
// T is an interface type such as any, on the dynamic type it holds.
// Everything else is compared with [reflect.DeepEqual], which also covers
// slices, maps and other non-comparable element types.
func Values[T any](a, b T) bool {
	if aNil, bNil := isNil(a), isNil(b); aNil || bNil {
		return aNil == bNil
	}
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	if eq, ok := dynamicEqual(any(a), any(b)); ok {
		return eq
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// dynamicEqual calls a's Equal method with b when the dynamic type of a has
// one of the form Equal(X) bool and b is assignable to X.
func dynamicEqual(a, b any) (equal, ok bool) {
	m := reflect.ValueOf(a).MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool || mt.IsVariadic() {
		return false, false
	}
	if !reflect.TypeOf(b).AssignableTo(mt.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Bool(), true
}
