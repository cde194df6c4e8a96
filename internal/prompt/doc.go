// Package prompt implements the question/answer exchanges used by the option
// resolver: a plain line-based prompter over any reader/writer pair and a
// survey-backed prompter for terminal sessions.
package prompt
