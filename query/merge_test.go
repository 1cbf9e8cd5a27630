package query_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hikulang/hiku/query"
)

var _ = Describe("Merge", func() {
	It("unions fields of the same node", func() {
		q1 := query.NewNode(query.NewField("indice"))
		q2 := query.NewNode(query.NewField("unmined"))

		merged, err := query.Merge([]*query.Node{q1, q2})
		Expect(err).NotTo(HaveOccurred())
		Expect(merged.Fields()).To(ConsistOf(
			query.NewField("indice"),
			query.NewField("unmined"),
		))
	})

	It("is idempotent on identical fields", func() {
		q := query.NewNode(query.NewField("indice"))
		merged, err := query.Merge([]*query.Node{q, q})
		Expect(err).NotTo(HaveOccurred())
		Expect(merged.Fields()).To(HaveLen(1))
	})

	It("fails with ConflictingOptions for same-name fields with differing options", func() {
		q1 := query.NewNode(query.Field{Name: "indice", Options: query.Options{"a": 1}})
		q2 := query.NewNode(query.Field{Name: "indice", Options: query.Options{"a": 2}})

		_, err := query.Merge([]*query.Node{q1, q2})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("ConflictingOptions"))
	})

	It("recursively merges links with equal options", func() {
		q1 := query.NewNode(query.Link{
			Name: "subaru",
			Node: query.NewNode(query.NewField("arion")),
		})
		q2 := query.NewNode(query.Link{
			Name: "subaru",
			Node: query.NewNode(query.NewField("bhaga")),
		})

		merged, err := query.Merge([]*query.Node{q1, q2})
		Expect(err).NotTo(HaveOccurred())
		links := merged.Links()
		Expect(links).To(HaveLen(1))
		Expect(links[0].Node.Fields()).To(ConsistOf(
			query.NewField("arion"),
			query.NewField("bhaga"),
		))
	})

	It("is commutative and associative on structure", func() {
		a := query.NewNode(query.NewField("a"))
		b := query.NewNode(query.NewField("b"))
		c := query.NewNode(query.NewField("c"))

		left, err := query.Merge([]*query.Node{a, b, c})
		Expect(err).NotTo(HaveOccurred())

		right, err := query.Merge([]*query.Node{c, b, a})
		Expect(err).NotTo(HaveOccurred())

		Expect(len(left.Children)).To(Equal(len(right.Children)))
		Expect(left.Fields()).To(ConsistOf(right.Fields()))
	})
})
