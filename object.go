package qc

import (
	"fmt"
	"reflect"
	"sort"
)

// Fields maps exported struct field names to generators (or literal
// values) assigned after construction.
type Fields map[string]any

// ObjectOf returns a Gen of struct instances. construct is either nil
// (the zero value is used) or a non-variadic func returning T or *T; it
// receives one freshly drawn value per configured arg on every draw.
// After construction, one value per entry in fields is drawn and assigned
// onto the instance, in sorted field-name order so the draw sequence is
// stable for a given seed. Both args and fields follow the
// generator-or-literal rule.
//
// Misconfiguration (non-struct T, unknown or unexported field, arg count
// mismatch) panics when the Gen is built.
func ObjectOf[T any](construct any, fields Fields, args ...any) Gen[*T] {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("qc: ObjectOf requires a struct type, got %s", rt))
	}

	var ctor reflect.Value
	if construct != nil {
		ctor = reflect.ValueOf(construct)
		ct := ctor.Type()
		if ct.Kind() != reflect.Func {
			panic(fmt.Sprintf("qc: ObjectOf construct must be a func or nil, got %T", construct))
		}
		if ct.IsVariadic() {
			panic("qc: ObjectOf construct must not be variadic")
		}
		if ct.NumOut() != 1 || (ct.Out(0) != rt && ct.Out(0) != reflect.PointerTo(rt)) {
			panic(fmt.Sprintf("qc: ObjectOf construct must return %s or *%s", rt, rt))
		}
		if ct.NumIn() != len(args) {
			panic(fmt.Sprintf("qc: ObjectOf construct takes %d args, %d generators given", ct.NumIn(), len(args)))
		}
	} else if len(args) > 0 {
		panic("qc: ObjectOf arg generators given without a construct func")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		f, ok := rt.FieldByName(name)
		if !ok || !f.IsExported() {
			panic(fmt.Sprintf("qc: ObjectOf: %s has no assignable field %q", rt, name))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	argSources := make([]Source, len(args))
	for i, a := range args {
		argSources[i] = asSource(a)
	}
	fieldSources := make([]Source, len(names))
	for i, name := range names {
		fieldSources[i] = asSource(fields[name])
	}

	return From(func(e *Env) *Stream[*T] {
		// Child streams are resolved once per binding and reused across
		// draws, keeping the random-source advancement in draw order.
		argDraw := make([]func() any, len(argSources))
		for i, s := range argSources {
			argDraw[i] = s.source(e)
		}
		fieldDraw := make([]func() any, len(fieldSources))
		for i, s := range fieldSources {
			fieldDraw[i] = s.source(e)
		}
		return newStream(func() *T {
			var obj *T
			if ctor.IsValid() {
				in := make([]reflect.Value, len(argDraw))
				for i, draw := range argDraw {
					in[i] = coerce(draw(), ctor.Type().In(i), "construct arg")
				}
				out := ctor.Call(in)[0]
				if out.Kind() == reflect.Pointer {
					obj = out.Interface().(*T)
				} else {
					v := out.Interface().(T)
					obj = &v
				}
			} else {
				obj = new(T)
			}
			rv := reflect.ValueOf(obj).Elem()
			for i, name := range names {
				fv := rv.FieldByName(name)
				fv.Set(coerce(fieldDraw[i](), fv.Type(), "field "+name))
			}
			return obj
		})
	})
}

// coerce adapts a drawn value to the target type, converting between
// compatible kinds (e.g. an int64 draw into an int field).
func coerce(v any, to reflect.Type, what string) reflect.Value {
	if v == nil {
		return reflect.Zero(to)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(to) {
		return rv
	}
	if rv.Type().ConvertibleTo(to) {
		return rv.Convert(to)
	}
	panic(fmt.Sprintf("qc: ObjectOf: cannot use drawn %T as %s (%s)", v, to, what))
}
