package repositories

import (
	"github.com/google/uuid"

	"yatra/internal/models/db_models"
)

// seedDestinations builds the embedded catalog. The dataset is a versioned
// fixture: record order is catalog order and feeds every lookup and the
// recommendation selector, so new records go at the end of their section.
func seedDestinations() []db_models.Destination {
	destinations := []db_models.Destination{
		// Delhi
		{
			Name:            "India Gate",
			State:           "Delhi",
			Category:        db_models.CategoryHistorical,
			Description:     "Iconic national monument and war memorial.",
			ImageURL:        "https://images.unsplash.com/photo-1587474260584-136574528ed5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Chole Bhature", "Paranthe", "Kebabs"},
			TravelTips:      "Visit during evening for the best lighting and cooler weather.",
		},
		{
			Name:            "Qutub Minar",
			State:           "Delhi",
			Category:        db_models.CategoryHistorical,
			Description:     "A UNESCO World Heritage Site with stunning architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1608031680798-876eed8cc7b6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mughlai cuisine", "Biryani"},
			TravelTips:      "Early morning visits are less crowded.",
		},
		{
			Name:            "Lotus Temple",
			State:           "Delhi",
			Category:        db_models.CategorySpiritual,
			Description:     "A serene space open to all religions.",
			ImageURL:        "https://images.unsplash.com/photo-1598091383021-15ddea10925d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Vegetarian meals"},
			TravelTips:      "Maintain silence inside the temple.",
		},
		{
			Name:            "Chandni Chowk",
			State:           "Delhi",
			Category:        db_models.CategoryCultural,
			Description:     "A chaotic but delicious food paradise.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Jalebis", "Samosas", "Paranthe"},
			TravelTips:      "Go with an empty stomach and try the street food.",
		},
		{
			Name:            "Red Fort",
			State:           "Delhi",
			Category:        db_models.CategoryHistorical,
			Description:     "Historical Mughal-era fort known for its grand architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1631629242635-4d8963b39c5a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mughlai dishes"},
			TravelTips:      "Take the audio guide to learn about the rich history.",
		},
		// Kerala
		{
			Name:            "Alleppey Backwaters",
			State:           "Kerala",
			Category:        db_models.CategoryNature,
			Description:     "Serene network of canals perfect for houseboat cruising.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Fish curry", "Appam", "Puttu"},
			TravelTips:      "Book houseboats in advance during peak season.",
		},
		{
			Name:            "Munnar Hill Station",
			State:           "Kerala",
			Category:        db_models.CategoryNature,
			Description:     "Rolling tea plantations and cool mountain climate.",
			ImageURL:        "https://images.unsplash.com/photo-1544735716-392fe2489ffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "September to March",
			LocalFood:       []string{"Tea", "Cardamom", "Spices"},
			TravelTips:      "Carry warm clothes as it gets chilly in the evenings.",
		},
		{
			Name:            "Kochi (Cochin)",
			State:           "Kerala",
			Category:        db_models.CategoryCultural,
			Description:     "Historic port city with Chinese fishing nets and colonial architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1582719471137-c3967ffb1c42?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Seafood", "Coconut curry", "Banana chips"},
			TravelTips:      "Visit Fort Kochi area during sunset for beautiful views.",
		},
		{
			Name:            "Thekkady Wildlife Sanctuary",
			State:           "Kerala",
			Category:        db_models.CategoryAdventure,
			Description:     "Home to elephants, tigers and exotic spice plantations.",
			ImageURL:        "https://images.unsplash.com/photo-1564349683136-77e08dba1ef7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Spice-infused dishes", "Bamboo rice"},
			TravelTips:      "Take a boat ride on Periyar Lake for wildlife spotting.",
		},
		{
			Name:            "Varkala Beach",
			State:           "Kerala",
			Category:        db_models.CategoryNature,
			Description:     "Dramatic cliff-side beach with spiritual significance.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "November to March",
			LocalFood:       []string{"Fresh seafood", "Coconut water"},
			TravelTips:      "Best time for cliff views is during sunset.",
		},
		// Mumbai
		{
			Name:            "Gateway of India",
			State:           "Mumbai",
			Category:        db_models.CategoryHistorical,
			Description:     "Iconic archway overlooking the Arabian Sea.",
			ImageURL:        "https://images.unsplash.com/photo-1595658658481-d53d3f999875?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "November to February",
			LocalFood:       []string{"Vada Pav", "Pav Bhaji", "Street food"},
			TravelTips:      "Take a ferry to Elephanta Caves from here.",
		},
		{
			Name:            "Marine Drive",
			State:           "Mumbai",
			Category:        db_models.CategoryCultural,
			Description:     "The Queen's Necklace - a beautiful seafront promenade.",
			ImageURL:        "https://images.unsplash.com/photo-1570168007204-dfb528c6958f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Bhel Puri", "Kulfi", "Juice"},
			TravelTips:      "Visit during sunset or night when the street lights create the 'Queen's Necklace' effect.",
		},
		// Rajasthan
		{
			Name:            "Amber Fort",
			State:           "Rajasthan",
			Category:        db_models.CategoryHistorical,
			Description:     "Magnificent hilltop fort with intricate architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1596870734672-9c7daa9c1813?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Dal Baati Churma", "Ghevar", "Rajasthani Thali"},
			TravelTips:      "Take an elephant ride up to the fort for a royal experience.",
		},
		{
			Name:            "Thar Desert",
			State:           "Rajasthan",
			Category:        db_models.CategoryAdventure,
			Description:     "Golden sand dunes perfect for camel safaris.",
			ImageURL:        "https://images.unsplash.com/photo-1548013146-72479768bada?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Desert delicacies", "Ker Sangri"},
			TravelTips:      "Stay overnight in desert camps for the best experience.",
		},
		// Goa
		{
			Name:            "Baga Beach",
			State:           "Goa",
			Category:        db_models.CategoryNature,
			Description:     "Popular beach known for water sports and nightlife.",
			ImageURL:        "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "November to March",
			LocalFood:       []string{"Fish curry rice", "Bebinca", "Feni"},
			TravelTips:      "Try water sports and visit beach shacks for authentic Goan experience.",
		},
		// Lucknow
		{
			Name:            "Bara Imambara",
			State:           "Lucknow",
			Category:        db_models.CategoryHistorical,
			Description:     "Magnificent 18th-century Shia mosque complex with famous labyrinth.",
			ImageURL:        "https://images.unsplash.com/photo-1610375461246-83df859d849d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Tunday Kebabs", "Biryani", "Kulfi"},
			TravelTips:      "Don't miss the Bhool Bhulaiya maze inside the complex.",
		},
		{
			Name:            "Chota Imambara",
			State:           "Lucknow",
			Category:        db_models.CategoryHistorical,
			Description:     "Beautiful golden-domed monument known as Palace of Lights.",
			ImageURL:        "https://images.unsplash.com/photo-1580492516014-4a28466d55df?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Lucknowi Biryani", "Sheermal"},
			TravelTips:      "Visit during evening when the monument is beautifully lit up.",
		},
		{
			Name:            "Hazratganj Market",
			State:           "Lucknow",
			Category:        db_models.CategoryCultural,
			Description:     "Historic shopping district famous for Chikan embroidery and street food.",
			ImageURL:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to April",
			LocalFood:       []string{"Basket Chaat", "Kulfi Faluda", "Makhan Malai"},
			TravelTips:      "Perfect place to buy authentic Chikan kurtas and taste local street food.",
		},
		{
			Name:            "Rumi Darwaza",
			State:           "Lucknow",
			Category:        db_models.CategoryHistorical,
			Description:     "Imposing gateway built in 1784, symbol of Lucknow.",
			ImageURL:        "https://images.unsplash.com/photo-1532274402911-5a369e4c4bb5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Street food nearby"},
			TravelTips:      "Great spot for photography, especially during golden hour.",
		},
		{
			Name:            "British Residency",
			State:           "Lucknow",
			Category:        db_models.CategoryHistorical,
			Description:     "Ruins of the British Residency, site of the 1857 siege.",
			ImageURL:        "https://images.unsplash.com/photo-1509741102003-ca64bfe5f069?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Traditional Awadhi cuisine nearby"},
			TravelTips:      "Explore the museum to learn about the historical significance.",
		},
		// Agra
		{
			Name:            "Taj Mahal",
			State:           "Agra",
			Category:        db_models.CategoryHistorical,
			Description:     "UNESCO World Heritage Site and one of the Seven Wonders of the World.",
			ImageURL:        "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Petha", "Mughlai cuisine", "Dalmoth"},
			TravelTips:      "Visit early morning for the best light and fewer crowds.",
		},
		{
			Name:            "Agra Fort",
			State:           "Agra",
			Category:        db_models.CategoryHistorical,
			Description:     "Mughal fort and UNESCO World Heritage Site with magnificent palaces.",
			ImageURL:        "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mughlai dishes", "Agra ka Petha"},
			TravelTips:      "Combine with Taj Mahal visit for a full day of Mughal heritage.",
		},
		// Varanasi
		{
			Name:            "Dashashwamedh Ghat",
			State:           "Varanasi",
			Category:        db_models.CategorySpiritual,
			Description:     "Main ghat on the Ganges famous for evening Ganga aarti ceremony.",
			ImageURL:        "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Banarasi paan", "Kachori sabzi", "Lassi"},
			TravelTips:      "Attend the evening Ganga aarti, a mesmerizing spiritual experience.",
		},
		{
			Name:            "Kashi Vishwanath Temple",
			State:           "Varanasi",
			Category:        db_models.CategorySpiritual,
			Description:     "One of the most sacred Hindu temples dedicated to Lord Shiva.",
			ImageURL:        "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Temple prasadam", "Traditional sweets"},
			TravelTips:      "Visit early morning for peaceful darshan and spiritual atmosphere.",
		},
		// Kanpur
		{
			Name:            "Allen Forest Zoo",
			State:           "Kanpur",
			Category:        db_models.CategoryNature,
			Description:     "One of the largest zoological parks in North India.",
			ImageURL:        "https://images.unsplash.com/photo-1564349683136-77e08dba1ef7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Street food", "Thaggu ke laddu"},
			TravelTips:      "Best time to visit is morning when animals are most active.",
		},
		// Meerut
		{
			Name:            "Augarnath Temple",
			State:           "Meerut",
			Category:        db_models.CategorySpiritual,
			Description:     "Ancient Shiva temple with historical and religious significance.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Traditional North Indian", "Local sweets"},
			TravelTips:      "Visit during Maha Shivratri for special celebrations.",
		},
		// Allahabad
		{
			Name:            "Triveni Sangam",
			State:           "Allahabad",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred confluence of three rivers - Ganga, Yamuna, and Saraswati.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Local street food", "Sweets"},
			TravelTips:      "Take a boat ride to experience the sangam. Visit during Kumbh Mela.",
		},
		{
			Name:            "Allahabad Fort",
			State:           "Allahabad",
			Category:        db_models.CategoryHistorical,
			Description:     "Magnificent Mughal fort built by Emperor Akbar on the banks of Yamuna.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Allahabadi cuisine", "Local delicacies"},
			TravelTips:      "Explore the Patalpuri Temple and Akshaya Vat inside the fort.",
		},
		// Mathura
		{
			Name:            "Krishna Janmabhoomi",
			State:           "Mathura",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred birthplace of Lord Krishna and major pilgrimage site.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mathura ke pede", "Makhan mishri"},
			TravelTips:      "Visit during Janmashtami for grand celebrations.",
		},
		// Vrindavan
		{
			Name:            "Banke Bihari Temple",
			State:           "Vrindavan",
			Category:        db_models.CategorySpiritual,
			Description:     "Famous Krishna temple known for its unique darshan style.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Prasadam", "Vrindavan ke laddu"},
			TravelTips:      "Experience the evening aarti and devotional atmosphere.",
		},
		// Uttar Pradesh
		{
			Name:            "UP Heritage Circuit",
			State:           "Uttar Pradesh",
			Category:        db_models.CategoryHistorical,
			Description:     "Explore India's largest state with Taj Mahal, Varanasi ghats, and Lucknow's Nawabi culture.",
			ImageURL:        "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Awadhi cuisine", "Petha", "Tunday kebabs", "Lucknowi biryani"},
			TravelTips:      "Plan multi-city trip covering Agra, Lucknow, Varanasi for complete UP experience.",
		},
		{
			Name:            "Krishna Janmabhoomi Circuit",
			State:           "Uttar Pradesh",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred pilgrimage covering Mathura-Vrindavan, birthplace of Lord Krishna.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mathura pede", "Makhan mishri", "Kachori"},
			TravelTips:      "Visit during Janmashtami for grand celebrations and festivals.",
		},
		{
			Name:            "Ganga Aarti Experience",
			State:           "Uttar Pradesh",
			Category:        db_models.CategorySpiritual,
			Description:     "Witness spiritual India along the sacred Ganges in Varanasi and Allahabad.",
			ImageURL:        "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Banarasi paan", "Kachori sabzi", "Malaiyo"},
			TravelTips:      "Take early morning boat ride on Ganges for peaceful spiritual experience.",
		},
		// Bangalore
		{
			Name:            "Lalbagh Botanical Garden",
			State:           "Bangalore",
			Category:        db_models.CategoryNature,
			Description:     "Beautiful 240-acre garden with diverse flora and glasshouse.",
			ImageURL:        "https://images.unsplash.com/photo-1563089145-599997674d42?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"South Indian breakfast", "Filter coffee"},
			TravelTips:      "Visit early morning for pleasant weather and bird watching.",
		},
		{
			Name:            "Bangalore Palace",
			State:           "Bangalore",
			Category:        db_models.CategoryHistorical,
			Description:     "Tudor-style palace inspired by Windsor Castle with beautiful architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1587553161605-3d17abc945e5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to February",
			LocalFood:       []string{"Mysore Pak", "Masala Dosa"},
			TravelTips:      "Take the audio guide to learn about the Mysore royal family.",
		},
		// Chennai
		{
			Name:            "Marina Beach",
			State:           "Chennai",
			Category:        db_models.CategoryNature,
			Description:     "One of the longest urban beaches in the world.",
			ImageURL:        "https://images.unsplash.com/photo-1582735689369-4fe89db7114c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "November to February",
			LocalFood:       []string{"Sundal", "Murukku", "Fresh coconut water"},
			TravelTips:      "Best time to visit is early morning or evening. Avoid swimming due to strong currents.",
		},
		{
			Name:            "Kapaleeshwarar Temple",
			State:           "Chennai",
			Category:        db_models.CategorySpiritual,
			Description:     "Ancient Dravidian temple dedicated to Lord Shiva.",
			ImageURL:        "https://images.unsplash.com/photo-1582562124811-c09040d0a901?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Temple prasadam", "South Indian meals"},
			TravelTips:      "Dress modestly and remove footwear before entering the temple.",
		},
		// Madurai
		{
			Name:            "Meenakshi Amman Temple",
			State:           "Madurai",
			Category:        db_models.CategorySpiritual,
			Description:     "Historic Hindu temple with stunning architecture and colorful gopurams.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Jigarthanda", "Paruthi Paal", "Kari Dosa"},
			TravelTips:      "Visit during evening aarti for a spiritual experience.",
		},
		// Kolkata
		{
			Name:            "Victoria Memorial",
			State:           "Kolkata",
			Category:        db_models.CategoryHistorical,
			Description:     "Magnificent white marble monument dedicated to Queen Victoria.",
			ImageURL:        "https://images.unsplash.com/photo-1609840114035-3c981b782dfe?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Fish curry", "Rosogolla", "Mishti doi"},
			TravelTips:      "Visit the museum inside to learn about colonial history.",
		},
		{
			Name:            "Howrah Bridge",
			State:           "Kolkata",
			Category:        db_models.CategoryCultural,
			Description:     "Iconic cantilever bridge over the Hooghly River.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Street food", "Puchka", "Kathi rolls"},
			TravelTips:      "Best photography spots are from both sides of the river.",
		},
		// Shimla
		{
			Name:            "The Ridge",
			State:           "Shimla",
			Category:        db_models.CategoryNature,
			Description:     "Famous open space in the heart of Shimla with mountain views.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "March to June, September to December",
			LocalFood:       []string{"Sidu", "Babru", "Channa Madra"},
			TravelTips:      "Take the toy train from Kalka to Shimla for scenic journey.",
		},
		{
			Name:            "Mall Road",
			State:           "Shimla",
			Category:        db_models.CategoryCultural,
			Description:     "Main shopping street with colonial architecture and local crafts.",
			ImageURL:        "https://images.unsplash.com/photo-1544735716-392fe2489ffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Hot chocolate", "Momos", "Local sweets"},
			TravelTips:      "Evening strolls offer beautiful sunset views over the mountains.",
		},
		// Manali
		{
			Name:            "Rohtang Pass",
			State:           "Manali",
			Category:        db_models.CategoryAdventure,
			Description:     "High mountain pass offering snow activities and stunning views.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "May to October",
			LocalFood:       []string{"Thukpa", "Momos", "Siddu"},
			TravelTips:      "Carry warm clothes and check road conditions before visiting.",
		},
		// Amritsar
		{
			Name:            "Golden Temple",
			State:           "Amritsar",
			Category:        db_models.CategorySpiritual,
			Description:     "Most sacred Sikh shrine with golden architecture and free langar.",
			ImageURL:        "https://images.unsplash.com/photo-1582719471137-c3967ffb1c42?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Langar meals", "Kulcha", "Lassi"},
			TravelTips:      "Cover your head and remove shoes before entering the complex.",
		},
		{
			Name:            "Jallianwala Bagh",
			State:           "Amritsar",
			Category:        db_models.CategoryHistorical,
			Description:     "Memorial of the tragic 1919 massacre, symbol of Indian freedom struggle.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Traditional Punjabi meals"},
			TravelTips:      "Visit the museum to understand the historical significance.",
		},
		// Rishikesh
		{
			Name:            "Laxman Jhula",
			State:           "Rishikesh",
			Category:        db_models.CategorySpiritual,
			Description:     "Iconic suspension bridge over the Ganges with spiritual significance.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "September to June",
			LocalFood:       []string{"Sattvic food", "Chole bhature", "Lassi"},
			TravelTips:      "Join evening Ganga aarti for a spiritual experience.",
		},
		{
			Name:            "Triveni Ghat",
			State:           "Rishikesh",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred bathing ghat where three rivers meet, evening aarti venue.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Prasadam", "Simple vegetarian meals"},
			TravelTips:      "Evening aarti at sunset is a must-see spiritual experience.",
		},
		// Haridwar
		{
			Name:            "Har Ki Pauri",
			State:           "Haridwar",
			Category:        db_models.CategorySpiritual,
			Description:     "Most sacred ghat on the Ganges for evening Ganga aarti.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "September to June",
			LocalFood:       []string{"Prasadam", "Aloo puri", "Jalebi"},
			TravelTips:      "Arrive early for evening aarti to get a good spot.",
		},
		// Hyderabad
		{
			Name:            "Charminar",
			State:           "Hyderabad",
			Category:        db_models.CategoryHistorical,
			Description:     "Iconic 16th-century monument and symbol of Hyderabad.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Biryani", "Haleem", "Irani chai"},
			TravelTips:      "Visit the nearby Laad Bazaar for pearls and bangles.",
		},
		{
			Name:            "Golconda Fort",
			State:           "Hyderabad",
			Category:        db_models.CategoryHistorical,
			Description:     "Ruined city and fortress with acoustic marvels and panoramic views.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Nizami cuisine", "Qubani ka meetha"},
			TravelTips:      "Visit during sound and light show in the evening.",
		},
		// Guwahati
		{
			Name:            "Kamakhya Temple",
			State:           "Guwahati",
			Category:        db_models.CategorySpiritual,
			Description:     "Ancient Hindu temple dedicated to Goddess Kamakhya.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to April",
			LocalFood:       []string{"Assamese thali", "Fish curry", "Pitha"},
			TravelTips:      "Temple is closed during Ambubachi Mela in June.",
		},
		// Ahmedabad
		{
			Name:            "Sabarmati Ashram",
			State:           "Ahmedabad",
			Category:        db_models.CategoryHistorical,
			Description:     "Gandhi's residence and starting point of Dandi March.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Gujarati thali", "Dhokla", "Fafda"},
			TravelTips:      "Visit the museum to learn about Gandhi's life and philosophy.",
		},
		// Bhopal
		{
			Name:            "Sanchi Stupa",
			State:           "Bhopal",
			Category:        db_models.CategoryHistorical,
			Description:     "Ancient Buddhist monument and UNESCO World Heritage Site.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Poha", "Jalebi", "Bhopali paan"},
			TravelTips:      "Best preserved Buddhist stupas in India, guided tours available.",
		},
		// Bhubaneswar
		{
			Name:            "Lingaraj Temple",
			State:           "Bhubaneswar",
			Category:        db_models.CategorySpiritual,
			Description:     "Ancient Hindu temple dedicated to Lord Shiva with Kalinga architecture.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Pakhala", "Dahibara Aloodum", "Rasagola"},
			TravelTips:      "Non-Hindus can view the temple from nearby viewing points.",
		},
		// Puri
		{
			Name:            "Jagannath Temple",
			State:           "Puri",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred Hindu temple famous for annual Rath Yatra festival.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mahaprasad", "Kheer", "Puri sweets"},
			TravelTips:      "Only Hindus are allowed inside the temple complex.",
		},
		// Gurugram
		{
			Name:            "Kingdom of Dreams",
			State:           "Gurugram",
			Category:        db_models.CategoryCultural,
			Description:     "Live entertainment destination showcasing Indian culture and arts.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "Year round",
			LocalFood:       []string{"Multi-cuisine food court", "Regional Indian dishes"},
			TravelTips:      "Book shows in advance, especially during weekends.",
		},
		// Gangtok
		{
			Name:            "Tsomgo Lake",
			State:           "Gangtok",
			Category:        db_models.CategoryNature,
			Description:     "Sacred glacial lake at high altitude with stunning mountain views.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "March to June, September to December",
			LocalFood:       []string{"Momos", "Thukpa", "Gundruk"},
			TravelTips:      "Carry warm clothes and permits required for Indian nationals.",
		},
		// Srinagar
		{
			Name:            "Dal Lake",
			State:           "Srinagar",
			Category:        db_models.CategoryNature,
			Description:     "Pristine lake famous for houseboats and shikara rides.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "April to October",
			LocalFood:       []string{"Rogan Josh", "Kahwa", "Wazwan"},
			TravelTips:      "Stay in a houseboat for authentic Kashmir experience.",
		},
		{
			Name:            "Mughal Gardens",
			State:           "Srinagar",
			Category:        db_models.CategoryNature,
			Description:     "Beautiful terraced gardens built during Mughal era.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "March to October",
			LocalFood:       []string{"Kashmiri tea", "Local fruits"},
			TravelTips:      "Visit Shalimar Bagh, Nishat Bagh, and Chashme Shahi gardens.",
		},
		// Leh
		{
			Name:            "Pangong Tso",
			State:           "Leh",
			Category:        db_models.CategoryNature,
			Description:     "High-altitude lake with changing colors and breathtaking beauty.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "May to September",
			LocalFood:       []string{"Thukpa", "Momos", "Butter tea"},
			TravelTips:      "Carry permits and warm clothes. Altitude sickness precautions needed.",
		},
		{
			Name:            "Nubra Valley",
			State:           "Leh",
			Category:        db_models.CategoryAdventure,
			Description:     "High desert valley with sand dunes and double-humped camels.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "May to September",
			LocalFood:       []string{"Ladakhi cuisine", "Apricots"},
			TravelTips:      "Cross Khardung La pass, one of the highest motorable roads.",
		},
		// Itanagar
		{
			Name:            "Tawang Monastery",
			State:           "Itanagar",
			Category:        db_models.CategorySpiritual,
			Description:     "Largest monastery in India with stunning mountain backdrop.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "March to October",
			LocalFood:       []string{"Momos", "Thukpa", "Local tribal cuisine"},
			TravelTips:      "Inner Line Permit required for non-residents of Arunachal Pradesh.",
		},
		// Kohima
		{
			Name:            "Hornbill Festival",
			State:           "Kohima",
			Category:        db_models.CategoryCultural,
			Description:     "Annual festival showcasing Naga tribal culture and traditions.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "December (during festival)",
			LocalFood:       []string{"Naga cuisine", "Smoked pork", "Bamboo shoot"},
			TravelTips:      "Plan visit during December for the famous Hornbill Festival.",
		},
		// Imphal
		{
			Name:            "Loktak Lake",
			State:           "Imphal",
			Category:        db_models.CategoryNature,
			Description:     "Largest freshwater lake in Northeast India with floating islands.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Manipuri cuisine", "Ngari", "Eromba"},
			TravelTips:      "Visit Keibul Lamjao National Park, only floating national park.",
		},
		// Shillong
		{
			Name:            "Living Root Bridges",
			State:           "Shillong",
			Category:        db_models.CategoryNature,
			Description:     "Unique bridges made from living tree roots in Cherrapunji.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to April",
			LocalFood:       []string{"Khasi cuisine", "Jadoh", "Tungrymbai"},
			TravelTips:      "Trek to double-decker root bridge in Nongriat village.",
		},
		// Agartala
		{
			Name:            "Ujjayanta Palace",
			State:           "Agartala",
			Category:        db_models.CategoryHistorical,
			Description:     "Former royal palace now serving as state museum.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Bengali cuisine", "Fish curry", "Sweets"},
			TravelTips:      "Explore the beautiful gardens and museum inside the palace.",
		},
		// Aizawl
		{
			Name:            "Blue Mountain",
			State:           "Aizawl",
			Category:        db_models.CategoryNature,
			Description:     "Scenic hill station with panoramic views of surrounding valleys.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mizo cuisine", "Bai", "Sawhchiar"},
			TravelTips:      "Inner Line Permit required for tourists.",
		},
		// Raipur
		{
			Name:            "Chitrakote Falls",
			State:           "Raipur",
			Category:        db_models.CategoryNature,
			Description:     "India's broadest waterfall, often called Niagara of India.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "July to March",
			LocalFood:       []string{"Chhattisgarhi cuisine", "Farra", "Petha"},
			TravelTips:      "Best during monsoon when water flow is maximum.",
		},
		// Ranchi
		{
			Name:            "Hundru Falls",
			State:           "Ranchi",
			Category:        db_models.CategoryNature,
			Description:     "Beautiful waterfall surrounded by dense forests and hills.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "July to February",
			LocalFood:       []string{"Litti Chokha", "Tribal cuisine", "Handia"},
			TravelTips:      "Combine with visit to nearby Jonha Falls for a full day trip.",
		},
		{
			Name:            "Rock Garden",
			State:           "Ranchi",
			Category:        db_models.CategoryNature,
			Description:     "Beautiful garden built around natural rock formations.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Local street food", "Tribal delicacies"},
			TravelTips:      "Great spot for photography and peaceful walks.",
		},
		// Jamshedpur
		{
			Name:            "Jubilee Park",
			State:           "Jamshedpur",
			Category:        db_models.CategoryNature,
			Description:     "Large urban park with rose garden and recreational facilities.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Bengali cuisine", "Tribal food"},
			TravelTips:      "Perfect for morning walks and family outings.",
		},
		// Deoghar
		{
			Name:            "Baba Baidyanath Temple",
			State:           "Deoghar",
			Category:        db_models.CategorySpiritual,
			Description:     "One of the twelve Jyotirlingas dedicated to Lord Shiva.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Prasadam", "Local sweets", "Khichdi"},
			TravelTips:      "Visit during Shravan month for special significance.",
		},
		// Jharkhand
		{
			Name:            "Netarhat",
			State:           "Jharkhand",
			Category:        db_models.CategoryNature,
			Description:     "Hill station known as Queen of Chotanagpur with scenic sunsets.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Tribal cuisine", "Handia", "Local vegetables"},
			TravelTips:      "Famous for spectacular sunrise and sunset views.",
		},
		{
			Name:            "Betla National Park",
			State:           "Jharkhand",
			Category:        db_models.CategoryNature,
			Description:     "First national park in Jharkhand with tigers, elephants and diverse wildlife.",
			ImageURL:        "https://images.unsplash.com/photo-1564349683136-77e08dba1ef7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "November to April",
			LocalFood:       []string{"Tribal delicacies", "Forest honey", "Local herbs"},
			TravelTips:      "Book safari in advance and carry binoculars for wildlife spotting.",
		},
		{
			Name:            "Jharkhand Tribal Heritage",
			State:           "Jharkhand",
			Category:        db_models.CategoryCultural,
			Description:     "Experience rich tribal culture, traditional dances and handicrafts.",
			ImageURL:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Handia", "Pittha", "Dudhauri", "Litti Chokha"},
			TravelTips:      "Visit tribal villages during festivals for authentic cultural experience.",
		},
		// Patna
		{
			Name:            "Bodh Gaya",
			State:           "Patna",
			Category:        db_models.CategorySpiritual,
			Description:     "Sacred Buddhist site where Buddha attained enlightenment.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Sattu", "Litti Chokha", "Khaja"},
			TravelTips:      "Visit Mahabodhi Temple and meditate under the Bodhi Tree.",
		},
		// Visakhapatnam
		{
			Name:            "Araku Valley",
			State:           "Visakhapatnam",
			Category:        db_models.CategoryNature,
			Description:     "Hill station with coffee plantations and tribal culture.",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to February",
			LocalFood:       []string{"Araku coffee", "Bamboo chicken", "Tribal cuisine"},
			TravelTips:      "Take the scenic train journey from Visakhapatnam to Araku.",
		},
		// Warangal
		{
			Name:            "Thousand Pillar Temple",
			State:           "Warangal",
			Category:        db_models.CategoryHistorical,
			Description:     "Ancient Kakatiya dynasty temple with intricate stone carvings.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Telangana cuisine", "Sarva Pindi", "Boorelu"},
			TravelTips:      "Marvel at the detailed stone work and temple architecture.",
		},
		// Mysore
		{
			Name:            "Mysore Palace",
			State:           "Mysore",
			Category:        db_models.CategoryHistorical,
			Description:     "Magnificent palace with Indo-Saracenic architecture and royal grandeur.",
			ImageURL:        "https://images.unsplash.com/photo-1587553161605-3d17abc945e5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to March",
			LocalFood:       []string{"Mysore Pak", "Masala Dosa", "Filter coffee"},
			TravelTips:      "Visit during Dasara festival for spectacular celebrations.",
		},
		// Hampi
		{
			Name:            "Virupaksha Temple",
			State:           "Hampi",
			Category:        db_models.CategoryHistorical,
			Description:     "Ancient temple complex in the ruins of Vijayanagara Empire.",
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			BestTimeToVisit: "October to February",
			LocalFood:       []string{"South Indian meals", "Banana leaf meals"},
			TravelTips:      "Explore the entire Hampi ruins complex, UNESCO World Heritage Site.",
		},
	}

	for i := range destinations {
		destinations[i].ID = uuid.NewString()
	}
	return destinations
}
