package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// identityCache resolves numeric owner/group ids to display names. Both
// tables are read in full once at startup; the cache is read-only after
// that, so it is safe to share across all entry resolutions.
//
// Users and groups are deliberately kept in two independent maps: the two
// numeric id spaces are unrelated and must never cross-resolve.
type identityCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

// loadIdentityCache builds the cache from the system identity databases.
func loadIdentityCache() *identityCache {
	return newIdentityCache("/etc/passwd", "/etc/group")
}

func newIdentityCache(passwdPath, groupPath string) *identityCache {
	return &identityCache{
		users:  loadIDTable(passwdPath),
		groups: loadIDTable(groupPath),
	}
}

// loadIDTable parses colon-separated records of the form "name:x:id:..."
// (both passwd and group files share this shape for the first three
// fields). An unreadable file yields an empty table rather than an error;
// lookups then simply fall back to the numeric id. Malformed lines are
// skipped.
func loadIDTable(path string) map[uint32]string {
	table := make(map[uint32]string)

	f, err := os.Open(path)
	if err != nil {
		return table
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}
		// First record wins for duplicate ids.
		if _, ok := table[uint32(id)]; !ok {
			table[uint32(id)] = fields[0]
		}
	}
	return table
}

// UserName returns the name for uid, or its decimal form on a miss.
func (c *identityCache) UserName(uid uint32) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(uid), 10)
}

// GroupName returns the name for gid, or its decimal form on a miss.
func (c *identityCache) GroupName(gid uint32) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(gid), 10)
}
