package segment

import "errors"

// ErrConnectivity indicates a Connectivity value other than Conn4 or Conn8.
var ErrConnectivity = errors.New("segment: unknown connectivity")
