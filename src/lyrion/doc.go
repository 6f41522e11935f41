/*
Package lyrion talks to a Lyrion Music Server (formerly Logitech Media Server)
over its JSON-RPC interface and exposes the play queue of a single player as a
queue.Sequence.

Every call is a POST to the server's /jsonrpc.js endpoint with a "slim.request"
method. Its params are the player ID and a CLI command split into words, such
as ["playlist", "move", "3", "0"]. Query commands end with "?" and the answer
is found in the "result" object under the query name prefixed with an
underscore.

The following commands are used:

  - playlist tracks ?: the number of entries in the queue
  - playlist album|artist|title <index> ?: metadata of an entry
  - playlist move <from> <to>: moves one entry

More info: https://lyrion.org/reference/cli/using-the-cli/
*/
package lyrion
