// Command driftsort scans a remote folder tree for coaching-session
// recordings, clusters related files into sessions, and records the results
// in a local catalog.
package main
