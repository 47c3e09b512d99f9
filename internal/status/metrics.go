package status

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// DiskUsage is one mounted partition's capacity snapshot.
type DiskUsage struct {
	Device      string
	Mount       string
	Fstype      string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// CollectDisks returns usage for every physical partition. Partitions whose
// usage cannot be read (empty optical drives, disconnected network shares)
// are skipped rather than failing the whole collection.
func CollectDisks() ([]DiskUsage, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	usages := make([]DiskUsage, 0, len(parts))
	for _, p := range parts {
		u, err := disk.Usage(p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		usages = append(usages, DiskUsage{
			Device:      p.Device,
			Mount:       p.Mountpoint,
			Fstype:      p.Fstype,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		})
	}

	return usages, nil
}
