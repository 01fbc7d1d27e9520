// Package macro renders a rename template. Templates embed $SC...$ macros
// that expand to program metadata, episode numbers, and the broadcast's
// start and end times; everything outside a macro is copied through.
//
// Expansion is plain longest-token substring replacement. Every macro ends
// in '$', so no macro is a prefix of another and replacement order cannot
// corrupt unexpanded macros.
package macro
