// Package platform exposes the process capabilities the scaffolder depends on
// (terminal attachment, working directory, the installed Node.js) so callers
// can read them once and pass them down explicitly.
package platform
