// Package seed holds the built-in catalog used to initialise an empty store
// and as the read fallback of the remote storefront backend.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// SystemAuthorID authors the built-in forum topics.
var SystemAuthorID = uuid.MustParse("01900000-0000-7000-8000-000000000000")

func id(kind, n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("01900000-0000-7000-8%03d-%012d", kind, n))
}

const (
	kindProduct = iota + 1
	kindCategory
	kindSlide
	kindTopic
)

type productRow struct {
	name, description string
	price             int64
	category          entity.ProductCategory
	image             string
	rating            float64
	features          []string
	stock             int
}

var productRows = []productRow{
	{
		name:        "AeroSpeed Carbon Pro Kask",
		description: "Yüksek hız aerodinamiği için tasarlanmış ultra hafif karbon fiber kask. Maksimum görüş açısı ve gelişmiş havalandırma sistemi.",
		price:       8500, category: entity.CategoryHelmet,
		image:    "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=800&auto=format&fit=crop",
		rating:   4.8,
		features: []string{"Karbon Fiber Kabuk", "Pinlock Dahil", "Acil Durum Ped Çıkarma", "ECE 22.06 Sertifikalı"},
		stock:    15,
	},
	{
		name:        "Urban Rider Deri Mont",
		description: "Şehir içi sürüşler için şık ve korumalı deri mont. D3O korumalar ile maksimum güvenlik, vintage görünüm.",
		price:       5200, category: entity.CategoryJacket,
		image:    "https://images.unsplash.com/photo-1559582930-bb01987cf4dd?q=80&w=800&auto=format&fit=crop",
		rating:   4.6,
		features: []string{"%100 Gerçek Deri", "D3O Omuz ve Dirsek Koruma", "Termal İçlik", "Havalandırma Fermuarları"},
		stock:    8,
	},
	{
		name:        "StormChaser Su Geçirmez Eldiven",
		description: "Her türlü hava koşulunda ellerinizi kuru ve sıcak tutan Gore-Tex teknolojili touring eldiveni.",
		price:       1800, category: entity.CategoryGloves,
		image:    "https://images.unsplash.com/photo-1555481771-16417c6f656c?q=80&w=800&auto=format&fit=crop",
		rating:   4.5,
		features: []string{"Gore-Tex Membran", "Dokunmatik Ekran Uyumlu", "Avuç İçi Slider", "Uzun Bilek Yapısı"},
		stock:    25,
	},
	{
		name:        "Enduro Tech Adventure Bot",
		description: "Zorlu arazi koşulları ve uzun yolculuklar için tasarlanmış, dayanıklı ve konforlu adventure botu.",
		price:       6750, category: entity.CategoryBoots,
		image:    "https://images.unsplash.com/photo-1555813456-96e25216239e?q=80&w=800&auto=format&fit=crop",
		rating:   4.9,
		features: []string{"Su Geçirmez", "Kaymaz Taban", "TPU Kaval Kemiği Koruma", "Hızlı Bağlama Sistemi"},
		stock:    12,
	},
	{
		name:        "StreetFighter Tekstil Mont",
		description: "Sıcak havalar için file ağırlıklı, sürtünmeye dayanıklı tekstil mont. Sportif kesim.",
		price:       3400, category: entity.CategoryJacket,
		image:    "https://images.unsplash.com/photo-1626847037657-fd3622613ce3?q=80&w=800&auto=format&fit=crop",
		rating:   4.3,
		features: []string{"Mesh Paneller", "Reflektif Detaylar", "Sırt Koruma Cebi", "Ayarlanabilir Bel"},
		stock:    20,
	},
	{
		name:        "ProVision İnterkom Sistemi",
		description: "Grup sürüşleri için kristal netliğinde ses sağlayan, uzun menzilli Bluetooth interkom.",
		price:       2900, category: entity.CategoryIntercom,
		image:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop",
		rating:   4.7,
		features: []string{"1.2km Menzil", "4 Kişilik Konferans", "Gürültü Önleme", "Suya Dayanıklı"},
		stock:    30,
	},
	{
		name:        "Titanium Dizlik Koruması",
		description: "Ekstra güvenlik isteyenler için mafsallı ve titanyum destekli diz koruması.",
		price:       1200, category: entity.CategoryProtection,
		image:    "https://images.unsplash.com/photo-1584556966052-c229e215e03f?q=80&w=800&auto=format&fit=crop",
		rating:   4.4,
		features: []string{"Mafsallı Yapı", "Titanyum Plaka", "Rahat İç Ped", "Ayarlanabilir Bantlar"},
		stock:    18,
	},
	{
		name:        "Viper Sport Kask",
		description: "Agresif tasarımı ve rüzgar tüneli testi ile geliştirilmiş aerodinamik yapısı ile pist günleri için ideal.",
		price:       7200, category: entity.CategoryHelmet,
		image:    "https://images.unsplash.com/photo-1614103121591-80d3012ce71d?q=80&w=800&auto=format&fit=crop",
		rating:   4.7,
		features: []string{"Fiberglass Kompozit", "Double-D Bağlantı", "Geniş Görüş", "Anti-Bakteriyel İçlik"},
		stock:    5,
	},
	{
		name:        "ProMoto Seramik Zincir Yağı",
		description: "Yüksek hız ve zorlu hava koşullarına dayanıklı, sıçrama yapmayan özel formüllü seramik zincir yağı.",
		price:       450, category: entity.CategoryAccessory,
		image:    "https://images.unsplash.com/photo-1589210094065-a19f47447548?q=80&w=800&auto=format&fit=crop",
		rating:   4.9,
		features: []string{"Seramik Kaplama", "Suya Dayanıklı", "O-Ring/X-Ring Uyumlu", "Uzun Ömürlü Koruma"},
		stock:    50,
	},
	{
		name:        "ThermoGrip Akıllı Elcik Isıtma",
		description: "Soğuk kış sürüşlerinde ellerinizi sıcak tutan, 5 kademeli ayarlanabilir, akü korumalı ısıtma sistemi.",
		price:       1650, category: entity.CategoryAccessory,
		image:    "https://images.unsplash.com/photo-1622185135505-2d795043ec63?q=80&w=800&auto=format&fit=crop",
		rating:   4.6,
		features: []string{"5 Isı Kademesi", "Hızlı Isınma Modu", "Su Geçirmez Kumanda", "Akü Voltaj Koruması"},
		stock:    10,
	},
	{
		name:        "MotoRescue Lastik Tamir Seti",
		description: "Yolda kalmamanız için tasarlanmış, CO2 tüplü ve fitilli kompakt tubeless lastik tamir kiti.",
		price:       780, category: entity.CategoryAccessory,
		image:    "https://images.unsplash.com/photo-1581235720704-06d3acfcb36f?q=80&w=800&auto=format&fit=crop",
		rating:   4.8,
		features: []string{"Tubeless Uyumlu", "3x CO2 Tüpü", "Kompakt Çanta", "Profesyonel Aletler"},
		stock:    40,
	},
}

// Products returns a fresh copy of the built-in catalog.
func Products(now time.Time) []*entity.Product {
	out := make([]*entity.Product, len(productRows))
	for i, row := range productRows {
		out[i] = &entity.Product{
			ID:          id(kindProduct, i+1),
			Name:        row.name,
			Description: row.description,
			Price:       decimal.NewFromInt(row.price),
			Category:    row.category,
			Image:       row.image,
			Images:      []string{row.image},
			Rating:      row.rating,
			Features:    append([]string(nil), row.features...),
			Stock:       row.stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return out
}

// Categories returns the built-in homepage tiles.
func Categories(now time.Time) []*entity.CategoryItem {
	rows := []entity.CategoryItem{
		{Name: "KASKLAR", Type: entity.CategoryHelmet, Image: productRows[0].image, Desc: "Maksimum Güvenlik", Count: "142 Model", ClassName: "col-span-2 row-span-2"},
		{Name: "MONTLAR", Type: entity.CategoryJacket, Image: productRows[1].image, Desc: "4 Mevsim Koruma", Count: "85 Model", ClassName: "col-span-2 row-span-1"},
		{Name: "ELDİVENLER", Type: entity.CategoryGloves, Image: productRows[2].image, Desc: "Hassas Kontrol", Count: "64 Model", ClassName: "col-span-1 row-span-1"},
		{Name: "BOTLAR", Type: entity.CategoryBoots, Image: productRows[3].image, Desc: "Sağlam Adımlar", Count: "32 Model", ClassName: "col-span-1 row-span-1"},
		{Name: "EKİPMAN", Type: entity.CategoryProtection, Image: productRows[6].image, Desc: "Zırh & Koruma", Count: "95 Parça", ClassName: "col-span-1 md:col-span-2 row-span-1"},
		{Name: "İNTERKOM", Type: entity.CategoryIntercom, Image: productRows[5].image, Desc: "İletişim", Count: "12 Model", ClassName: "col-span-1 md:col-span-2 row-span-1"},
	}

	out := make([]*entity.CategoryItem, len(rows))
	for i := range rows {
		c := rows[i]
		c.ID = id(kindCategory, i+1)
		c.CreatedAt = now
		out[i] = &c
	}

	return out
}

// Slides returns the built-in hero slides.
func Slides(now time.Time) []*entity.Slide {
	rows := []entity.Slide{
		{
			Image:    "https://images.unsplash.com/photo-1609630875171-b1321377ee65?q=80&w=1920&auto=format&fit=crop",
			Title:    "RIDE THE FUTURE",
			Subtitle: "YAPAY ZEKA DESTEKLİ EKİPMAN SEÇİMİ İLE TANIŞIN.",
			CTA:      "ALIŞVERİŞE BAŞLA",
			Action:   entity.SlideActionShop,
		},
		{
			Image:    "https://images.unsplash.com/photo-1558981408-db0ecd8a1ee4?q=80&w=1920&auto=format&fit=crop",
			Title:    "CARBON & SPEED",
			Subtitle: "PROFESYONELLER İÇİN GELİŞTİRİLMİŞ KASK KOLEKSİYONU.",
			CTA:      "KASKLARI GÖR",
			Action:   entity.SlideActionShop,
		},
		{
			Image:    "https://images.unsplash.com/photo-1547053265-a0c602077e65?q=80&w=1920&auto=format&fit=crop",
			Title:    "OFFROAD SPIRIT",
			Subtitle: "SINIRLARI ZORLAYAN MACERALAR İÇİN HAZIR OL.",
			CTA:      "KEŞFET",
			Action:   entity.SlideActionShop,
		},
	}

	out := make([]*entity.Slide, len(rows))
	for i := range rows {
		s := rows[i]
		s.ID = id(kindSlide, i+1)
		s.CreatedAt = now
		out[i] = &s
	}

	return out
}

// Topics returns the built-in welcome thread.
func Topics(now time.Time) []*entity.ForumTopic {
	return []*entity.ForumTopic{
		{
			ID:         id(kindTopic, 1),
			AuthorID:   SystemAuthorID,
			AuthorName: "MotoVibe Admin",
			Title:      "MotoVibe Topluluğuna Hoş Geldiniz!",
			Content:    "Merhaba arkadaşlar...",
			Category:   entity.ForumGeneral,
			Date:       now,
			Likes:      42,
			Views:      1250,
			Comments:   []entity.ForumComment{},
			Tags:       []string{"Duyuru"},
		},
	}
}
