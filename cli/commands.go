package cli

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tuannh982/hashset/utils/collections"
)

type binaryOp func(a, b *collections.HashSet[string]) (*collections.HashSet[string], error)

func newBinaryCommand(o *options, name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.loadSet(args[0])
			if err != nil {
				return err
			}
			b, err := o.loadSet(args[1])
			if err != nil {
				return err
			}
			r, err := op(a, b)
			if err != nil {
				return errors.Wrap(err, name)
			}
			return writeElements(cmd.OutOrStdout(), o.format, r.Entries())
		},
	}
}

type comparison struct {
	Subset         bool `yaml:"subset"`
	ProperSubset   bool `yaml:"properSubset"`
	Superset       bool `yaml:"superset"`
	ProperSuperset bool `yaml:"properSuperset"`
	Overlaps       bool `yaml:"overlaps"`
	Equals         bool `yaml:"equals"`
}

func compare(a, b *collections.HashSet[string]) (c comparison, err error) {
	checks := []struct {
		dst *bool
		fn  func(*collections.HashSet[string]) (bool, error)
	}{
		{&c.Subset, func(s *collections.HashSet[string]) (bool, error) { return s.IsSubsetOf(b.All()) }},
		{&c.ProperSubset, func(s *collections.HashSet[string]) (bool, error) { return s.IsProperSubsetOf(b.All()) }},
		{&c.Superset, func(s *collections.HashSet[string]) (bool, error) { return s.IsSupersetOf(b.All()) }},
		{&c.ProperSuperset, func(s *collections.HashSet[string]) (bool, error) { return s.IsProperSupersetOf(b.All()) }},
		{&c.Overlaps, func(s *collections.HashSet[string]) (bool, error) { return s.Overlaps(b.All()) }},
		{&c.Equals, func(s *collections.HashSet[string]) (bool, error) { return s.SetEquals(b.All()) }},
	}
	for _, check := range checks {
		if *check.dst, err = check.fn(a); err != nil {
			return c, err
		}
	}
	return c, nil
}

func newCompareCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print how A relates to B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.loadSet(args[0])
			if err != nil {
				return err
			}
			b, err := o.loadSet(args[1])
			if err != nil {
				return err
			}
			c, err := compare(a, b)
			if err != nil {
				return errors.Wrap(err, "compare")
			}
			return writeYAML(cmd.OutOrStdout(), c)
		},
	}
}

func newStatsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats A",
		Short: "Print bucket statistics of the set loaded from A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.loadSet(args[0])
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), s.Stats())
		},
	}
}

func newGenerateCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate N",
		Short: "Print N random UUIDs as an element file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Errorf("invalid count %q", args[0])
			}
			arr := make([]string, 0, n)
			for i := 0; i < n; i++ {
				arr = append(arr, uuid.NewString())
			}
			return writeElements(cmd.OutOrStdout(), o.format, arr)
		},
	}
}
