package catalog

var defaultServices = []Service{
	{
		ID:        "1",
		Title:     "Cybersecurity & Ethical Hacking",
		Slug:      "cybersecurity-ethical-hacking",
		ShortDesc: "Penetration testing, vulnerability assessment and hardening of your digital assets.",
		FullDesc:  "Our certified security engineers attack your systems the way real adversaries would. We run network and web application penetration tests, review configurations, assess social engineering exposure and deliver a prioritised remediation plan, then verify the fixes.",
		Icon:      "shield",
	},
	{
		ID:        "2",
		Title:     "Networking & Infrastructure",
		Slug:      "networking-infrastructure",
		ShortDesc: "Design, deployment and maintenance of reliable wired and wireless networks.",
		FullDesc:  "From a single office to multi-site enterprises, we plan, cable, configure and monitor network infrastructure. Routing, switching, VLAN segmentation, VPNs, firewalls and Wi-Fi coverage are delivered with documentation your team can run with.",
		Icon:      "network",
	},
	{
		ID:        "3",
		Title:     "Software Development",
		Slug:      "software-development",
		ShortDesc: "Custom web, mobile and backend applications built to last.",
		FullDesc:  "We build software around your business process: web platforms, mobile apps, internal tools and integrations. Every project ships with automated tests, CI pipelines and a secure-by-default architecture.",
		Icon:      "code",
	},
	{
		ID:        "4",
		Title:     "Cloud & Server Solutions",
		Slug:      "cloud-server-solutions",
		ShortDesc: "Migration, hosting and management of cloud and on-premise servers.",
		FullDesc:  "We migrate workloads to the cloud, size and harden servers, automate backups and set up monitoring and alerting. Hybrid setups that keep sensitive data on-premise are supported.",
		Icon:      "cloud",
	},
	{
		ID:        "5",
		Title:     "Smart Systems & IoT",
		Slug:      "smart-systems-iot",
		ShortDesc: "Automation, sensors and smart building integrations.",
		FullDesc:  "We connect lighting, access control, climate and sensors into a single managed system. Devices are isolated on their own network segments and kept patched so convenience never costs you security.",
		Icon:      "cpu",
	},
	{
		ID:        "6",
		Title:     "CCTV & Surveillance",
		Slug:      "cctv-surveillance",
		ShortDesc: "IP camera systems with secure remote viewing and recording.",
		FullDesc:  "We survey the site, install IP cameras and recorders, and configure encrypted remote access. Retention policies and access logs are set up to match your compliance needs.",
		Icon:      "camera",
	},
	{
		ID:        "7",
		Title:     "IT Consulting",
		Slug:      "it-consulting",
		ShortDesc: "Technology strategy, audits and roadmaps for growing teams.",
		FullDesc:  "We review your current systems, licences and processes and turn the findings into a practical roadmap. Ongoing advisory retainers keep your technology decisions aligned with your business goals.",
		Icon:      "briefcase",
	},
	{
		ID:        "8",
		Title:     "Data Recovery & Backup",
		Slug:      "data-recovery-backup",
		ShortDesc: "Recover lost data and make sure it never happens again.",
		FullDesc:  "We recover data from failed drives, corrupted file systems and ransomware incidents, then design tested backup strategies with off-site copies and documented restore procedures.",
		Icon:      "database",
	},
}
