// Package wasmdom implements contact.Surface over the live browser DOM using
// syscall/js. It only builds for js/wasm.
package wasmdom
