// Package pipeline runs one decode, classify and save pass.
//
// A Runner reads the source image, renders every mask layer in a single scan,
// creates the output directory and writes each mask in layer order. Failures
// are reported as *StageError values naming the stage (decode, composite,
// mkdir or encode) and, where relevant, the file involved.
//
// By default the first failure stops the run; masks already written stay on
// disk. With Config.ContinueOnError set, an encode failure is logged and the
// remaining masks are still written; the failures are returned together at
// the end. Decode and mkdir failures always stop the run.
package pipeline
