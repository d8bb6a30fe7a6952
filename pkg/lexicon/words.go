package lexicon

import "github.com/turknlp/turkpos/pkg/tag"

// Built-in Turkish closed word lists. Demonstrative bu/şu/o are listed
// as pronouns; determiner readings lose to the earlier declaration.
func defaultEntries() []Entry {
	var entries []Entry

	add := func(t tag.Tag, words ...string) {
		for _, w := range words {
			entries = append(entries, Entry{Surface: w, Tag: t})
		}
	}

	// Pronouns (personal, demonstrative, interrogative).
	add(tag.Pron,
		"ben", "sen", "o", "biz", "siz", "onlar",
		"bu", "şu", "bunlar", "şunlar",
		"bunu", "şunu", "onu", "bana", "sana", "ona",
		"bize", "size", "onlara", "beni", "seni", "bizi", "sizi",
		"kim", "kimi", "kime", "ne", "neyi", "nereye", "nerede", "nereden",
		"kendi", "kendisi", "birbiri", "herkes", "hiçbiri", "birisi", "kimse")

	// Determiners.
	add(tag.Det,
		"bir", "her", "hangi", "bazı", "birkaç", "hiçbir",
		"tüm", "bütün", "çoğu", "kimi", "diğer", "başka")

	// Conjunctions.
	add(tag.Conj,
		"ve", "veya", "ama", "fakat", "ancak", "çünkü", "ki", "ile",
		"yahut", "hem", "ya", "oysa", "halbuki", "yani", "eğer", "madem")

	// Postpositions.
	add(tag.Postp,
		"için", "gibi", "kadar", "göre", "beri", "dolayı", "rağmen",
		"karşı", "doğru", "üzere", "diye", "sonra", "önce", "itibaren", "olarak")

	// Particles (question clitics written separately, focus clitics, negation).
	add(tag.Part,
		"mi", "mı", "mu", "mü", "değil", "ise", "bile", "dahi", "da", "de")

	// Interjections.
	add(tag.Intj,
		"ah", "oh", "ey", "vay", "eyvah", "of", "aman", "hey", "yahu", "merhaba")

	// Common adverbs.
	add(tag.Adv,
		"çok", "az", "daha", "en", "şimdi", "dün", "bugün", "yarın",
		"hep", "hiç", "yine", "gene", "belki", "artık", "henüz", "hemen",
		"zaten", "asla", "bazen", "genellikle", "birlikte", "nasıl", "neden", "niye")

	// Common adjectives. An open class, but a seed list anchors the
	// suffix cascade the way a baseline dictionary does.
	add(tag.Adj,
		"güzel", "iyi", "kötü", "büyük", "küçük", "yeni", "eski",
		"genç", "yaşlı", "uzun", "kısa", "yüksek", "alçak", "sıcak", "soğuk",
		"pahalı", "ucuz", "zor", "kolay", "mutlu", "üzgün", "hızlı", "yavaş",
		"zevkli", "önemli", "son", "ilk", "doğal", "geçen")

	// Multiword function expressions, findable via Scan.
	add(tag.Adv, "ne kadar", "bir an önce", "her zaman", "arada sırada")
	add(tag.Conj, "ya da", "hem de", "ne var ki")

	return entries
}
