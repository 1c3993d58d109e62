// Package video extracts raw RGBA frames from a video file or an image
// sequence directory, and thins frame sequences by stride.
//
// Video files are decoded with [github.com/AlexEidt/Vidio], which drives an
// ffmpeg process; ffmpeg and ffprobe must be on PATH. Directories are read
// as image sequences sorted by filename.
//
// Every failure to produce frames wraps [ErrSource].
package video
