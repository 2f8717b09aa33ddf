package llrb

import "github.com/pkg/errors"
import s "github.com/bnclabs/gosettings"
import sigar "github.com/elastic/gosigar"

import "github.com/bnclabs/gollrb/api"

// Defaultsettings for llrb instance.
//
// "memcapacity" (int64)
//		Soft budget, in bytes, for memory held by tree nodes. Used
//		for reporting utilisation in stats and logs. Default will be
//		the free RAM available on the system.
//
// "maxheight.factor" (float64, default: 2.1)
//		Height of the tree shall not exceed factor * log2(n+1), for
//		n entries. Validate() fails when this bound is broken. Must
//		be > 1.
//
// "validate.everyn" (int64, default: 0)
//		If > 0, tree is validated after every n mutations and the
//		first violation will panic. Useful while debugging, costs
//		O(n) per validation.
//
// "log.components" (string, default: "")
//		Comma separated list of components to enable logging for,
//		refer LogComponents().
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"memcapacity":      int64(free),
		"maxheight.factor": float64(2.1),
		"validate.everyn":  int64(0),
		"log.components":   "",
	}
	return setts
}

func (llrb *LLRB[K, V]) readsettings(setts s.Settings) *LLRB[K, V] {
	if err := checksettings(setts); err != nil {
		panic(err)
	}
	llrb.memcapacity = setts.Int64("memcapacity")
	llrb.heightfactor = setts.Float64("maxheight.factor")
	llrb.validateevery = setts.Int64("validate.everyn")
	if comps := setts.String("log.components"); comps != "" {
		LogComponents(parsecomponents(comps)...)
	}
	return llrb
}

func checksettings(setts s.Settings) error {
	if factor := setts.Float64("maxheight.factor"); factor <= 1 {
		return errors.Wrapf(
			api.ErrorInvalidSettings, "maxheight.factor %v must be > 1", factor)
	}
	if n := setts.Int64("validate.everyn"); n < 0 {
		return errors.Wrapf(
			api.ErrorInvalidSettings, "validate.everyn %v must be >= 0", n)
	}
	if n := setts.Int64("memcapacity"); n < 0 {
		return errors.Wrapf(
			api.ErrorInvalidSettings, "memcapacity %v must be >= 0", n)
	}
	return nil
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
