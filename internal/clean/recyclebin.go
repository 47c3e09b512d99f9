package clean

import "errors"

// ErrRecycleBinUnsupported is returned where the Recycle Bin Shell API is
// unavailable (non-Windows builds). The runner records it as a skip, the
// same way an uninstalled external tool is handled.
var ErrRecycleBinUnsupported = errors.New("recycle bin is only available on Windows")
