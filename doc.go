// Package kwrepr synthesizes keyword-style textual representations
// for struct values.
//
// # Overview
//
// Given a struct and an Options value, kwrepr renders instances as
// "TypeName(name=value, ...)" with the fields chosen, ordered, and
// formatted by the options. Field values pass through a bounded
// renderer that truncates long strings and containers, so enormous
// nested structures stay readable.
//
//	type User struct {
//		ID        int
//		Name      string
//		_password string
//	}
//
//	var userRepr = kwrepr.MustNew[User](kwrepr.DefaultOptions())
//
//	userRepr.String(User{ID: 1, Name: "Alice", _password: "secret"})
//	// User(ID=1, Name='Alice')
//
// # Field Selection
//
// The rendered field set resolves in priority order:
//
//   - Options.Include, when set, determines the fields exactly, in the
//     order given, private names allowed.
//   - Otherwise the struct's declared fields, in declaration order,
//     minus Options.Exclude, minus underscore-led names when
//     Options.ExcludePrivate is on (the default).
//   - Computed fields from Options.Compute append after the attribute
//     fields, in declared order.
//
// Include and Exclude are mutually exclusive; setting both fails at
// attachment with ErrConfig, before anything is rendered.
//
// # Formatting
//
// A field with an Options.FormatSpec entry renders through the
// specifier mini-language (".2f", "#06x", "<8", ".1%", ...). A
// specifier that does not fit its value fails the render with
// ErrFormat, even under SkipMissing. All other values go through the
// bounded renderer, whose limits are set by Options.Repr.
//
// # Attachment
//
// Two equivalent surfaces produce the same builder:
//
//   - New / MustNew build a Repr bound to a type at definition time;
//     the type delegates its String method to it, which wires the
//     representation into fmt and friends.
//   - Register / RegisterType attach options to types after the fact.
//     Sprint and Wrap consult the registration, so representations
//     work for types the caller cannot modify.
//
// Attached options are immutable and safe for concurrent use; compute
// functions run on the caller's goroutine and their thread safety is
// the caller's responsibility.
package kwrepr
