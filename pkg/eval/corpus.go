package eval

import "github.com/turknlp/turkpos/pkg/tag"

// mustTags converts label strings to tags. The corpus is static, so an
// unknown label is a programming error.
func mustTags(labels ...string) []tag.Tag {
	out := make([]tag.Tag, len(labels))
	for i, l := range labels {
		t, err := tag.Parse(l)
		if err != nil {
			panic("eval: built-in corpus: " + err.Error())
		}
		out[i] = t
	}
	return out
}

// BuiltinScenarios returns the bundled Turkish evaluation corpus: six
// scenario groups from simple clause structure through morphological
// case, academic register, edge cases, and question forms.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "basit_cumleler",
			Description: "Basic Turkish clause structures",
			Sentences: []GoldSentence{
				{Text: "Ali okula gitti .", Tags: mustTags("Noun", "Noun", "Verb", "Punc")},
				{Text: "Kitap masada .", Tags: mustTags("Noun", "Noun", "Punc")},
				{Text: "Bu çok güzel .", Tags: mustTags("Pron", "Adv", "Adj", "Punc")},
			},
		},
		{
			Name:        "karmasik_cumleler",
			Description: "Complex clause structures",
			Sentences: []GoldSentence{
				{
					Text: "Öğrenciler dersten sonra kütüphaneye giderek ders çalıştılar .",
					Tags: mustTags("Noun", "Noun", "Postp", "Noun", "Verb", "Noun", "Verb", "Punc"),
				},
				{
					Text: "Geçen yıl Ankara'da çalışan mühendis İstanbul'a taşındı .",
					Tags: mustTags("Adj", "Noun", "Noun", "Verb", "Noun", "Noun", "Verb", "Punc"),
				},
				{
					Text: "Bugün hava çok soğuk olduğu için dışarı çıkmadık .",
					Tags: mustTags("Adv", "Noun", "Adv", "Adj", "Verb", "Conj", "Adv", "Verb", "Punc"),
				},
			},
		},
		{
			Name:        "morfolojik_durumlar",
			Description: "Turkish grammatical case suffixes",
			Sentences: []GoldSentence{
				{
					Text: "Öğretmen öğrenciye kitabı verdi .",
					Tags: mustTags("Noun", "Noun_Dat", "Noun_Acc", "Verb", "Punc"),
				},
				{
					Text: "Çocuk oyuncağını çantasından çıkardı .",
					Tags: mustTags("Noun", "Noun_Acc", "Noun_Abl", "Verb", "Punc"),
				},
				{
					Text: "Ailemin evinde mutlu günler geçirdik .",
					Tags: mustTags("Noun_Gen", "Noun_Loc", "Adj", "Noun", "Verb", "Punc"),
				},
			},
		},
		{
			Name:        "akademik_teknik",
			Description: "Academic and technical register",
			Sentences: []GoldSentence{
				{
					Text: "Bu araştırmada makine öğrenmesi algoritmaları kullanılmıştır .",
					Tags: mustTags("Pron", "Noun", "Noun", "Noun", "Noun", "Verb", "Punc"),
				},
				{
					Text: "Doğal dil işleme teknikleri metin analizi için geliştirildi .",
					Tags: mustTags("Adj", "Noun", "Noun", "Noun", "Noun", "Noun", "Conj", "Verb", "Punc"),
				},
				{
					Text: "Algoritmanın performansı %95 doğruluk oranında ölçüldü .",
					Tags: mustTags("Noun", "Noun", "Num", "Noun", "Noun", "Verb", "Punc"),
				},
			},
		},
		{
			Name:        "ozel_durumlar",
			Description: "Abbreviations, numerals, interjections",
			Sentences: []GoldSentence{
				{
					Text: "COVID-19 pandemisi 2020'de başladı .",
					Tags: mustTags("Noun", "Noun", "Num", "Verb", "Punc"),
				},
				{
					Text: "E-posta adresini example@test.com olarak güncelledim .",
					Tags: mustTags("Noun", "Noun", "Noun", "Conj", "Verb", "Punc"),
				},
				{
					Text: "Ah ! Ne kadar güzel bir manzara !",
					Tags: mustTags("Intj", "Punc", "Pron", "Adv", "Adj", "Det", "Noun", "Punc"),
				},
			},
		},
		{
			Name:        "soru_cumleleri",
			Description: "Question forms",
			Sentences: []GoldSentence{
				{Text: "Bu kitabı kim yazdı ?", Tags: mustTags("Pron", "Noun", "Pron", "Verb", "Punc")},
				{Text: "Nereye gidiyorsun ?", Tags: mustTags("Pron", "Verb", "Punc")},
				{Text: "Hangi üniversitede okuyorsun ?", Tags: mustTags("Det", "Noun", "Verb", "Punc")},
			},
		},
	}
}
