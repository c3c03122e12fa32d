// Package corpus materializes catalog candidates as files in a target
// directory.
//
// Every candidate yields exactly one [CreationRecord]. When the filesystem
// rejects a name, the failure is classified ([ErrNameRejected] or
// [ErrEncodingUnsupported]) and a file named failed_creation_<n>.txt is
// written instead, where n is the CRC-32 (IEEE) of the name modulo 10000.
// Nothing a single candidate does can abort the run.
//
// The builder never changes the process working directory: all files are
// created through a [Dir] handle opened on the explicitly passed target, so
// concurrent callers building distinct directories do not interfere.
package corpus
