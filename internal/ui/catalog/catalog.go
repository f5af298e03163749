// Package catalog holds the fixed site content tables: header navigation,
// footer links, company contact details and the product categories shown by
// the carousel. Everything here is compile-time data; callers must treat the
// returned slices as read-only.
package catalog

import "github.com/greenaire/site/internal/ui/model"

// CompanyName is the legal name printed in the footer.
const CompanyName = "Green Aire Conditioning Systems Co. LLC"

// NavLinks is the header navigation table.
var NavLinks = []model.NavItem{
	{Name: "Home", Path: "/"},
	{Name: "About Us", Path: "/about"},
	{
		Name: "Products",
		Path: "/Products",
		SubItems: []model.NavItem{
			{Name: "VRF", Path: "/Products"},
			{Name: "Packaged Unit", Path: "/Products"},
			{Name: "Ductable Units", Path: "/Products"},
			{Name: "Chiller Units", Path: "/Products"},
			{Name: "Customized Air Conditioning Unit", Path: "/Products"},
			{Name: "Air Quality Management Sensors, Dehumidifier, Air Purification", Path: "/Products"},
			{Name: "Automation", Path: "/Products"},
			{Name: "Customized Electrical HT & LT Panel", Path: "/Products"},
			{Name: "Spaces & Air Distribution Products", Path: "/Products"},
			{Name: "Fabrication", Path: "/Products"},
		},
	},
	{
		Name: "OEM",
		Path: "/Oem",
		SubItems: []model.NavItem{
			{Name: "Dunhum Bush", Path: "/Dunhumbush"},
			{Name: "Trane", Path: "/Trane"},
		},
	},
	{Name: "Contact", Path: "/Contact"},
}

// FooterLinks are the footer link columns.
var FooterLinks = []model.FooterLinkGroup{
	{
		Title: "Company",
		Links: []model.NavItem{
			{Name: "Home", Path: "/"},
			{Name: "About Us", Path: "/about"},
			{Name: "Products", Path: "/Products"},
			{Name: "OEM", Path: "/Oem"},
			{Name: "Contact", Path: "/Contact"},
		},
	},
	{
		Title: "Support",
		Links: []model.NavItem{
			{Name: "Privacy Policy", Path: "/privacy"},
			{Name: "Terms of Service", Path: "/terms"},
			{Name: "Warranty", Path: "/warranty"},
			{Name: "FAQ", Path: "/faq"},
		},
	},
}

// ContactDetails is shown next to the contact form.
var ContactDetails = []model.ContactDetail{
	{Label: "Email", Value: "contact@example.com", Href: "mailto:contact@example.com"},
	{Label: "Phone", Value: "+971 0522125656", Href: "tel:+9710522125656"},
	{Label: "Address", Value: "Industrial Area, Dubai Mainland, UAE"},
	{Label: "Hours", Value: "Monday - Friday, 9:00 AM - 5:00 PM GST"},
}

// Categories is the ordered carousel sequence.
var Categories = []model.Category{
	{
		ID:    1,
		Label: "OUR TEAM",
		Products: []model.Product{
			{
				Name:  "Our team mate",
				Specs: []string{"Our team consists of seasoned professionals with extensive expertise in HVAC technologies. From design and installation to maintenance and support, our team is dedicated to delivering excellence at every step."},
				Image: "/Team_image.png",
			},
			{
				Name:  "Mission & Vision",
				Specs: []string{"We are dedicated to upholding core values that define our commitment to excellence. Our mission is to provide superior HVAC solutions driven by: 1. Quality 2. Sustainability 3. Customer Satisfaction"},
				Image: "/Team_image_1.png",
			},
		},
	},
	{
		ID:          2,
		Label:       "Products Range: CHILLERS",
		Description: "Air handling solutions for optimal indoor air quality and comfort",
		Products: []model.Product{
			{
				Name:  "Air Cooled Chiller",
				Specs: []string{"The air-cooled chiller offers efficient cooling solutions suitable for various applications, ensuring optimal performance and energy savings."},
				Image: "/aircooledchiller.png",
			},
			{
				Name:  "Water Cooled Chiller",
				Specs: []string{"Our water-cooled chiller systems deliver reliable and sustainable cooling with advanced technology, tailored to meet specific industry demands."},
				Image: "/watercooledchiller.png",
			},
		},
	},
	{
		ID:          3,
		Label:       "Packaged Air Conditioners",
		Description: "Variable refrigerant flow technology for zoned comfort control",
		Products: []model.Product{
			{
				Name:  "Air Cooled Packaged",
				Specs: []string{"The air-cooled packaged air conditioners are designed for superior performance, providing cost-effective and efficient cooling solutions."},
				Image: "/aircooledpackage.png",
			},
			{
				Name:  "Water Cooled Packaged",
				Specs: []string{"The water-cooled packaged air conditioners are engineered to deliver optimal cooling results and sustainability, meeting the specific requirements of diverse industries."},
				Image: "/watercooledpackage.png",
			},
		},
	},
	{
		ID:          4,
		Label:       "Customized HVAC Units",
		Description: "Reliable heat rejection equipment for large-scale applications",
		Products: []model.Product{
			{
				Name:  "Flameproof HVAC Units",
				Specs: []string{"GACS' Flame-Proof Air Conditioner is engineered for seamless operation, vital for applications like control panels in remote or challenging environments. In Oil, Gas, Refinery, and Petrochemical industries, this 24x7 system ensures trouble-free functionality with a focus on safety, preventing ignition of explosive gases."},
				Image: "/flameproof.png",
			},
			{
				Name:  "Customized Air Conditioning Unit",
				Specs: []string{"ATEX certified Flameproof HVAC units are designed for hazardous environments with flammable substances. Complying with international safety standards, these systems feature Flame-proof enclosures, preventing potential explosions from causing harm."},
				Image: "/customizedairunit.png",
			},
		},
	},
	{
		ID:          5,
		Label:       "EC Fans",
		Description: "Reliable heat rejection equipment for large-scale applications",
		Products: []model.Product{
			{
				Name:  "High-Quality Fans",
				Specs: []string{"We offer top-notch EC fans known for their energy efficiency and excellent performance in various applications."},
				Image: "/highqualityfans.png",
			},
			{
				Name:  "Fan Repair Services",
				Specs: []string{"Our expert team specializes in repairing and maintaining EC fans, ensuring their reliability and optimal functionality using advanced technology."},
				Image: "/fanrepairservice.png",
			},
		},
	},
	{
		ID:          6,
		Label:       "Customized HVAC Units",
		Description: "Reliable heat rejection equipment for large-scale applications",
		Products: []model.Product{
			{
				Name:  "Flameproof HVAC Units",
				Specs: []string{"GACS' Flame-Proof Air Conditioner is engineered for seamless operation, vital for applications like control panels in remote or challenging environments. In Oil, Gas, Refinery, and Petrochemical industries, this 24x7 system ensures trouble-free functionality with a focus on safety, preventing ignition of explosive gases."},
				Image: "/flameproof.png",
			},
			{
				Name:  "Customized Air Conditioning Unit",
				Specs: []string{"ATEX certified Flameproof HVAC units are designed for hazardous environments with flammable substances. Complying with international safety standards, these systems feature Flame-proof enclosures, preventing potential explosions from causing harm."},
				Image: "/customizedairunit.png",
			},
		},
	},
}

// Routes returns every distinct client-side path reachable from the header
// and footer navigation, in first-seen order.
func Routes() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	for _, item := range NavLinks {
		add(item.Path)
		for _, sub := range item.SubItems {
			add(sub.Path)
		}
	}
	for _, group := range FooterLinks {
		for _, link := range group.Links {
			add(link.Path)
		}
	}
	return out
}

// FindNavItem looks up a top-level navigation item by name.
func FindNavItem(items []model.NavItem, name string) (model.NavItem, bool) {
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return model.NavItem{}, false
}
