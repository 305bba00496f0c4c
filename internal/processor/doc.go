// Package processor contains the core logic of the stevens command. It
// turns command-line arguments, standard input and batch files into
// transcription requests, runs them through the dispatcher in parallel,
// and keeps the results in the optional transcription store.
package processor
